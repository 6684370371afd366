// api/controller/health_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (hc *HealthController) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", hc.Health)
}

// Health endpoint
func (hc *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}
