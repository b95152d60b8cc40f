package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scanresume/resume-analyzer/internal/models"
	"scanresume/resume-analyzer/internal/services"
)

func newExtractApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/v1/extract", NewExtractHandler(services.NewTextExtractor()).HandleExtract)
	return app
}

func multipartUpload(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestHandleExtractPlainText(t *testing.T) {
	app := newExtractApp()
	body, contentType := multipartUpload(t, "resume.txt", "text/plain", []byte("Go engineer with ten years of experience."))

	req := httptest.NewRequest("POST", "/api/v1/extract", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var parsed struct {
		Success bool                 `json:"success"`
		Data    models.ExtractedText `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.True(t, parsed.Success)
	assert.Equal(t, "Go engineer with ten years of experience.", parsed.Data.Text)
	assert.Equal(t, "plain", parsed.Data.Method)
}

func TestHandleExtractFallsBackToExtension(t *testing.T) {
	app := newExtractApp()
	body, contentType := multipartUpload(t, "resume.txt", "", []byte("Go engineer with ten years of experience."))

	req := httptest.NewRequest("POST", "/api/v1/extract", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHandleExtractUnsupportedType(t *testing.T) {
	app := newExtractApp()
	body, contentType := multipartUpload(t, "photo.png", "image/png", []byte{0x89, 0x50, 0x4e, 0x47})

	req := httptest.NewRequest("POST", "/api/v1/extract", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var parsed models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, "File must be PDF, DOCX, or plain text", parsed.Error)
}

func TestHandleExtractCorruptFile(t *testing.T) {
	app := newExtractApp()
	body, contentType := multipartUpload(t, "resume.pdf", "application/pdf", []byte("not a real pdf"))

	req := httptest.NewRequest("POST", "/api/v1/extract", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var parsed models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, "Failed to extract text from file", parsed.Error)
}

func TestHandleExtractMissingFile(t *testing.T) {
	app := newExtractApp()

	req := httptest.NewRequest("POST", "/api/v1/extract", bytes.NewReader(nil))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=none")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
