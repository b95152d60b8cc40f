package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"scanresume/resume-analyzer/internal/models"
	"scanresume/resume-analyzer/internal/services"
	"scanresume/resume-analyzer/internal/validation"
)

type FeedbackHandler struct {
	// mailer is nil when no mail credential is configured; the endpoint
	// answers 503 in that state instead of attempting to send.
	mailer services.FeedbackMailer
}

func NewFeedbackHandler(mailer services.FeedbackMailer) *FeedbackHandler {
	return &FeedbackHandler{mailer: mailer}
}

// HandleFeedback handles POST /feedback.
func (h *FeedbackHandler) HandleFeedback(c *fiber.Ctx) error {
	if h.mailer == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.ErrorResponse{
			Error: "Email service not configured",
		})
	}

	var req models.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
		})
	}

	// Older clients sent no rating; keep accepting them.
	if req.Rating == 0 {
		req.Rating = 5
	}

	if err := validation.ValidateStruct(&req); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
				Error:   "Invalid feedback data",
				Details: verr.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid feedback data",
		})
	}

	messageID, err := h.mailer.SendFeedback(c.Context(), &req)
	if err != nil {
		log.Printf("❌ Failed to send feedback email: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Failed to send email",
		})
	}

	return c.JSON(models.SuccessResponse{
		Success: true,
		Message: "Feedback sent successfully",
		Data:    models.FeedbackData{ID: messageID},
	})
}
