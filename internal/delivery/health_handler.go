package delivery

import (
	"context"
	"net/http"
	"time"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/health"
	"github.com/gin-gonic/gin"
)

type HealthChecker interface {
	Check(ctx context.Context) health.Report
}

type HealthHandler struct {
	checker HealthChecker
}

func NewHealthHandler(checker HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

func (h *HealthHandler) RegisterRoutes(router gin.IRouter) {
	g := router.Group("/health")
	g.GET("", h.Health)
	g.GET("/detailed", h.Detailed)
	g.GET("/ready", h.Ready)
	g.GET("/live", h.Live)
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    health.StatusHealthy,
		"timestamp": time.Now().UTC(),
		"service":   health.ServiceName,
		"version":   health.ServiceVersion,
	})
}

func (h *HealthHandler) Detailed(c *gin.Context) {
	report := h.checker.Check(c.Request.Context())
	status := http.StatusOK
	if !report.Healthy() {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, report)
}

func (h *HealthHandler) Ready(c *gin.Context) {
	if !h.checker.Check(c.Request.Context()).Healthy() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "Not Ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Ready"})
}

func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Alive"})
}
