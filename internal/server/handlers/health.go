package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vzahanych/weather-map/internal/server/utils"
	"go.uber.org/zap"
)

// ReadinessChecker reports whether the service can answer queries.
type ReadinessChecker interface {
	Ready(ctx context.Context) error
}

type HealthHandler struct {
	logger    *zap.Logger
	checker   ReadinessChecker
	startTime time.Time
}

func NewHealthHandler(checker ReadinessChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		logger:    logger,
		checker:   checker,
		startTime: time.Now(),
	}
}

func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "alive",
		Uptime: time.Since(h.startTime).String(),
	})
}

func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.checker.Ready(utils.GetContextFromGinContext(c)); err != nil {
		h.logger.Warn("Readiness check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status: "unavailable",
			Uptime: time.Since(h.startTime).String(),
			Error:  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status: "ready",
		Uptime: time.Since(h.startTime).String(),
	})
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Uptime:    time.Since(h.startTime).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
