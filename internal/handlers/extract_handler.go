package handlers

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"scanresume/resume-analyzer/internal/models"
	"scanresume/resume-analyzer/internal/services"
)

// maxUploadSize caps resume uploads at 10 MB.
const maxUploadSize = 10 * 1024 * 1024

type ExtractHandler struct {
	extractor services.TextExtractor
}

func NewExtractHandler(extractor services.TextExtractor) *ExtractHandler {
	return &ExtractHandler{extractor: extractor}
}

// HandleExtract handles POST /extract: pulls plain text from an uploaded
// PDF, DOCX, or plain-text resume so the client can feed it to /analyze.
func (h *ExtractHandler) HandleExtract(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "No file uploaded. Please upload a resume as 'file'.",
		})
	}

	if fileHeader.Size > maxUploadSize {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: fmt.Sprintf("File too large. Max size: %d bytes", maxUploadSize),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Failed to read uploaded file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Failed to read uploaded file",
		})
	}

	mime := fileHeader.Header.Get("Content-Type")
	if mime == "" {
		mime = mimeFromExtension(fileHeader.Filename)
	}

	extracted, err := h.extractor.ExtractText(mime, data)
	if err != nil {
		var unsupported *services.ErrUnsupportedFileType
		if errors.As(err, &unsupported) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
				Error: "File must be PDF, DOCX, or plain text",
			})
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{
			Error:   "Failed to extract text from file",
			Message: err.Error(),
		})
	}

	return c.JSON(models.SuccessResponse{
		Success: true,
		Data:    extracted,
	})
}

func mimeFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return services.MimePDF
	case ".docx":
		return services.MimeDOCX
	case ".txt":
		return services.MimePlain
	default:
		return ""
	}
}
