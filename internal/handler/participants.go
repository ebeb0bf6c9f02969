package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zmtwc/planner/internal/model"
	"github.com/zmtwc/planner/internal/service"
)

type ParticipantHandler struct {
	svc *service.ParticipantService
}

func NewParticipantHandler(svc *service.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{svc: svc}
}

// Join godoc
// @Summary Join an event as a participant
// @Tags participants
// @Accept json
// @Produce json
// @Param request body model.JoinEventRequest true "Event and user"
// @Success 201 {object} model.ParticipantResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /participant [post]
func (h *ParticipantHandler) Join(c *gin.Context) {
	var req model.JoinEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	auth := GetAuthUser(c)

	participant, err := h.svc.Join(c.Request.Context(), req, auth.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, participant)
}

// Leave godoc
// @Summary Withdraw own participation from an event
// @Tags participants
// @Param user_id path int true "User ID"
// @Param event_id path int true "Event ID"
// @Success 204
// @Failure 403 {object} model.ErrorResponse
// @Router /participant/{user_id}/{event_id} [delete]
func (h *ParticipantHandler) Leave(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	eventID, ok := parseID(c, "event_id")
	if !ok {
		return
	}
	auth := GetAuthUser(c)

	if err := h.svc.Leave(c.Request.Context(), userID, eventID, auth.ID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
