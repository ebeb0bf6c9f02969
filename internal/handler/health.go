package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Healthz is the liveness endpoint.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
