package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"blogify/helper"
	"blogify/models"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the database is reachable.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	ping   Pinger
	Helper *helper.HTTPHelper
}

func NewHealthHandler(ping Pinger, h *helper.HTTPHelper) *HealthHandler {
	return &HealthHandler{ping: ping, Helper: h}
}

func (h *HealthHandler) Root(c *gin.Context) {
	h.Helper.SendSuccess(c, models.Envelope{Success: true, Message: "Server is Running!"})
}

func (h *HealthHandler) Health(c *gin.Context) {
	h.Helper.SendSuccess(c, models.HealthResponse{
		Envelope: models.Envelope{Success: true},
		Status:   "healthy",
	})
}

func (h *HealthHandler) Ready(c *gin.Context) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.ping(ctx); err != nil {
			slog.Warn("readiness check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, models.HealthResponse{
				Envelope: models.Envelope{Success: false},
				Status:   "unavailable",
			})
			return
		}
	}

	h.Helper.SendSuccess(c, models.HealthResponse{
		Envelope: models.Envelope{Success: true},
		Status:   "ready",
	})
}
