package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/zmtwc/planner/internal/client"
	"github.com/zmtwc/planner/internal/service"
)

// Services bundles everything the router needs.
type Services struct {
	Auth         *service.AuthService
	Users        *service.UserService
	Events       *service.EventService
	Requirements *service.RequirementService
	Participants *service.ParticipantService
	Fulfillments *service.FulfillmentService
	Captcha      *client.CaptchaClient

	Metrics      *Metrics
	LoginLimiter *RateLimiter
}

// NewRouter wires middleware and routes. Everything that mutates data
// sits behind the token middleware; register/authenticate/captcha and
// the read-only event views are public.
func NewRouter(s Services, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(), s.Metrics.Middleware(), CORSMiddleware(allowedOrigins))

	authHandler := NewAuthHandler(s.Auth, s.Captcha)
	userHandler := NewUserHandler(s.Users)
	eventHandler := NewEventHandler(s.Events)
	requirementHandler := NewRequirementHandler(s.Requirements)
	participantHandler := NewParticipantHandler(s.Participants)
	fulfillmentHandler := NewFulfillmentHandler(s.Fulfillments)

	r.GET("/healthz", Healthz)
	r.GET("/metrics", gin.WrapH(s.Metrics.Handler()))

	limited := s.LoginLimiter.Middleware()
	r.POST("/register", limited, authHandler.Register)
	r.POST("/authenticate", limited, authHandler.Authenticate)
	r.POST("/captcha", authHandler.VerifyCaptcha)

	r.GET("/event", eventHandler.List)
	r.GET("/event/:id", eventHandler.Get)

	authed := r.Group("", AuthMiddleware(s.Auth))
	authed.GET("/user/:id", userHandler.Get)
	authed.GET("/user/:id/requirements", userHandler.UsedRequirements)
	authed.PUT("/user/:id", userHandler.Update)
	authed.DELETE("/user/:id", userHandler.Delete)

	authed.POST("/event", eventHandler.Create)
	authed.PUT("/event/:id", eventHandler.Update)
	authed.DELETE("/event/:id", eventHandler.Delete)

	authed.POST("/requirement", requirementHandler.Create)
	authed.PUT("/requirement/:id", requirementHandler.Update)
	authed.DELETE("/requirement/:id", requirementHandler.Delete)

	authed.POST("/participant", participantHandler.Join)
	authed.DELETE("/participant/:user_id/:event_id", participantHandler.Leave)

	authed.POST("/fullfillment", fulfillmentHandler.Create)
	authed.DELETE("/fullfillment/:user_id/:requirement_id", fulfillmentHandler.Delete)

	return r
}
