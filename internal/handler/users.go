package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zmtwc/planner/internal/model"
	"github.com/zmtwc/planner/internal/service"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Get godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} model.ErrorResponse
// @Router /user/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UsedRequirements godoc
// @Summary Requirement usage report across the user's own events
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} model.UsedRequirement
// @Failure 403 {object} model.ErrorResponse
// @Router /user/{id}/requirements [get]
func (h *UserHandler) UsedRequirements(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	auth := GetAuthUser(c)

	requirements, err := h.svc.UsedRequirements(c.Request.Context(), id, auth.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, requirements)
}

// Update godoc
// @Summary Update own profile
// @Tags users
// @Accept json
// @Param id path int true "User ID"
// @Param request body model.UpdateUserRequest true "Fields to change"
// @Success 204
// @Failure 400 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /user/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	auth := GetAuthUser(c)

	var req model.UpdateUserRequest
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
// @Summary Delete own account
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Failure 403 {object} model.ErrorResponse
// @Router /user/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
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
