package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zmtwc/planner/internal/client"
	"github.com/zmtwc/planner/internal/model"
	"github.com/zmtwc/planner/internal/service"
)

type AuthHandler struct {
	svc     *service.AuthService
	captcha *client.CaptchaClient
}

func NewAuthHandler(svc *service.AuthService, captcha *client.CaptchaClient) *AuthHandler {
	return &AuthHandler{svc: svc, captcha: captcha}
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.CreateUserRequest true "Username and password"
// @Success 201 {object} model.User
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.svc.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Authenticate godoc
// @Summary Exchange credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.AuthenticateRequest true "Username and password"
// @Success 200 {object} model.AuthenticateResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /authenticate [post]
func (h *AuthHandler) Authenticate(c *gin.Context) {
	var req model.AuthenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// VerifyCaptcha godoc
// @Summary Verify a reCAPTCHA token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.CaptchaRequest true "Captcha response token"
// @Success 200
// @Failure 400 {object} model.ErrorResponse
// @Router /captcha [post]
func (h *AuthHandler) VerifyCaptcha(c *gin.Context) {
	var req model.CaptchaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.captcha.Verify(c.Request.Context(), req.Token); err != nil {
		if errors.Is(err, client.ErrVerificationFailed) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		writeError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
