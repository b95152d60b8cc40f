package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"scanresume/resume-analyzer/internal/config"
	"scanresume/resume-analyzer/internal/models"
	"scanresume/resume-analyzer/internal/services"
	"scanresume/resume-analyzer/internal/validation"
)

type AnalyzeHandler struct {
	cfg      *config.Config
	limiter  services.RateLimiter
	analyzer services.AnalyzerService
}

func NewAnalyzeHandler(
	cfg *config.Config,
	limiter services.RateLimiter,
	analyzer services.AnalyzerService,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		cfg:      cfg,
		limiter:  limiter,
		analyzer: analyzer,
	}
}

// HandleAnalyze handles POST /analyze. Gates run strictly in order: rate
// limit, then bearer auth, then input validation, so no provider spend
// happens on a request that was going to be rejected anyway.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	ctx := c.Context()
	clientID := services.ClientID(c.Get("x-forwarded-for"), c.Get("x-real-ip"))

	if h.limiter.IsRateLimited(ctx, clientID) {
		return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse{
			Error: "Rate limit exceeded. Please try again later.",
		})
	}

	authHeader := c.Get("Authorization")
	if authHeader == "" || authHeader != "Bearer "+h.cfg.Auth.APIToken {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
			Error: "Unauthorized access",
		})
	}

	var req models.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
		})
	}

	if err := validation.ValidateStruct(&req); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
				Error:   "Invalid input data",
				Details: verr.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid input data",
		})
	}

	result, err := h.analyzer.AnalyzeResume(ctx, req.JobDescription, req.ResumeText)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error:   "Failed to analyze resume",
			Message: err.Error(),
		})
	}

	remaining := h.limiter.RemainingRequests(ctx, clientID)
	c.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Set("X-RateLimit-Limit", strconv.Itoa(h.limiter.Limit()))

	return c.JSON(models.SuccessResponse{
		Success: true,
		Data:    result,
	})
}
