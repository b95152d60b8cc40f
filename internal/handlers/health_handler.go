package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"scanresume/resume-analyzer/internal/services"
)

type HealthHandler struct {
	limiter services.RateLimiter
}

func NewHealthHandler(limiter services.RateLimiter) *HealthHandler {
	return &HealthHandler{limiter: limiter}
}

// HandleHealth handles GET /health. Rate limiting fails open when its store
// is down, so the store state is surfaced here for operators to tell "no
// abuse" apart from "limiting disabled".
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	rateLimiting := "disabled"
	if h.limiter.Connected(c.Context()) {
		rateLimiting = "enabled"
	}

	return c.JSON(fiber.Map{
		"status":        "healthy",
		"rate_limiting": rateLimiting,
		"time":          time.Now(),
	})
}
