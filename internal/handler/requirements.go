package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zmtwc/planner/internal/model"
	"github.com/zmtwc/planner/internal/service"
)

type RequirementHandler struct {
	svc *service.RequirementService
}

func NewRequirementHandler(svc *service.RequirementService) *RequirementHandler {
	return &RequirementHandler{svc: svc}
}

// Create godoc
// @Summary Add a requirement to an owned event
// @Tags requirements
// @Accept json
// @Produce json
// @Param request body model.CreateRequirementRequest true "New requirement"
// @Success 201 {object} model.Requirement
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /requirement [post]
func (h *RequirementHandler) Create(c *gin.Context) {
	var req model.CreateRequirementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	auth := GetAuthUser(c)

	requirement, err := h.svc.Create(c.Request.Context(), req, auth.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, requirement)
}

// Update godoc
// @Summary Update a requirement of an owned event
// @Tags requirements
// @Accept json
// @Param id path int true "Requirement ID"
// @Param request body model.UpdateRequirementRequest true "Fields to change"
// @Success 204
// @Failure 400 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /requirement/{id} [put]
func (h *RequirementHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	auth := GetAuthUser(c)

	var req model.UpdateRequirementRequest
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
// @Summary Delete a requirement of an owned event
// @Tags requirements
// @Param id path int true "Requirement ID"
// @Success 204
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /requirement/{id} [delete]
func (h *RequirementHandler) Delete(c *gin.Context) {
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
