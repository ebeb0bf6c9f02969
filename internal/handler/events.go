package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zmtwc/planner/internal/model"
	"github.com/zmtwc/planner/internal/service"
)

type EventHandler struct {
	svc *service.EventService
}

func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

// Create godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param request body model.CreateEventRequest true "New event"
// @Success 201 {object} model.Event
// @Failure 403 {object} model.ErrorResponse
// @Router /event [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req model.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	auth := GetAuthUser(c)

	event, err := h.svc.Create(c.Request.Context(), req, auth.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// Get godoc
// @Summary Get an event with participants, requirements and fulfillments
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} model.EventDetail
// @Failure 404 {object} model.ErrorResponse
// @Router /event/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	event, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// List godoc
// @Summary List all events
// @Tags events
// @Produce json
// @Success 200 {array} model.Event
// @Router /event [get]
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// Update godoc
// @Summary Update an owned event
// @Tags events
// @Accept json
// @Param id path int true "Event ID"
// @Param request body model.UpdateEventRequest true "Fields to change"
// @Success 204
// @Failure 400 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /event/{id} [put]
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	auth := GetAuthUser(c)

	var req model.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.svc.Update(c.Request.Context(), id, auth.ID, req); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete godoc
// @Summary Delete an owned event
// @Tags events
// @Param id path int true "Event ID"
// @Success 204
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /event/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	auth := GetAuthUser(c)

	if err := h.svc.Delete(c.Request.Context(), id, auth.ID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
