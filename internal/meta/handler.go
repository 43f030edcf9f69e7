package meta

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ogeoseo/go-api-server/internal/config"
	"github.com/ogeoseo/go-api-server/internal/shared/fixture"
	"github.com/gin-gonic/gin"
)

// Handler handles meta endpoints (health check, app version, etc.)
type Handler struct {
	cfg   *config.Config
	store *fixture.Store
}

// NewHandler creates a new meta handler
func NewHandler(cfg *config.Config, store *fixture.Store) *Handler {
	return &Handler{
		cfg:   cfg,
		store: store,
	}
}

// Health checks service and fixture-store health
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	// Check fixture set readability
	fixtureStatus := "up"
	var fixtureError string
	start := time.Now()

	if err := h.store.HealthCheck(ctx); err != nil {
		fixtureStatus = "down"
		fixtureError = err.Error()
		slog.Error("Health check 실패", "error", err)

		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"service": gin.H{
				"name":        h.cfg.App.Name,
				"environment": h.cfg.App.Env,
			},
			"checks": gin.H{
				"fixtures": gin.H{
					"status": fixtureStatus,
					"error":  fixtureError,
				},
			},
		})
		return
	}

	fixtureLatency := time.Since(start).Milliseconds()

	// All checks passed
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"service": gin.H{
			"name":        h.cfg.App.Name,
			"environment": h.cfg.App.Env,
			"port":        h.cfg.App.Port,
		},
		"checks": gin.H{
			"fixtures": gin.H{
				"status":     fixtureStatus,
				"latency_ms": fixtureLatency,
			},
		},
	})
}
