package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zmtwc/planner/internal/model"
	"github.com/zmtwc/planner/internal/service"
)

type FulfillmentHandler struct {
	svc *service.FulfillmentService
}

func NewFulfillmentHandler(svc *service.FulfillmentService) *FulfillmentHandler {
	return &FulfillmentHandler{svc: svc}
}

// Create godoc
// @Summary Fulfill a requirement as the authenticated user
// @Tags fulfillments
// @Accept json
// @Produce json
// @Param request body model.CreateFulfillmentRequest true "Requirement and user"
// @Success 201 {object} model.FulfillmentResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /fullfillment [post]
func (h *FulfillmentHandler) Create(c *gin.Context) {
	var req model.CreateFulfillmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	auth := GetAuthUser(c)

	fulfillment, err := h.svc.Create(c.Request.Context(), req, auth.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, fulfillment)
}

// Delete godoc
// @Summary Withdraw own fulfillment of a requirement
// @Tags fulfillments
// @Param user_id path int true "User ID"
// @Param requirement_id path int true "Requirement ID"
// @Success 204
// @Failure 403 {object} model.ErrorResponse
// @Router /fullfillment/{user_id}/{requirement_id} [delete]
func (h *FulfillmentHandler) Delete(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	requirementID, ok := parseID(c, "requirement_id")
	if !ok {
		return
	}
	auth := GetAuthUser(c)

	if err := h.svc.Delete(c.Request.Context(), userID, requirementID, auth.ID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
