package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scanresume/resume-analyzer/internal/models"
)

func analyzeRequest(resumeLen, jobDescLen int) models.AnalyzeRequest {
	return models.AnalyzeRequest{
		ResumeText:     strings.Repeat("r", resumeLen),
		JobDescription: strings.Repeat("j", jobDescLen),
	}
}

func TestValidateAnalyzeRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       models.AnalyzeRequest
		wantField string
	}{
		{"resume at lower bound", analyzeRequest(50, 20), ""},
		{"resume at upper bound", analyzeRequest(50000, 20), ""},
		{"resume one below minimum", analyzeRequest(49, 20), "resumeText"},
		{"resume one above maximum", analyzeRequest(50001, 20), "resumeText"},
		{"job description one below minimum", analyzeRequest(50, 19), "jobDescription"},
		{"job description one above maximum", analyzeRequest(50, 10001), "jobDescription"},
		{"missing resume", models.AnalyzeRequest{JobDescription: strings.Repeat("j", 20)}, "resumeText"},
		{"job title too short", models.AnalyzeRequest{
			ResumeText:     strings.Repeat("r", 50),
			JobDescription: strings.Repeat("j", 20),
			JobTitle:       "x",
		}, "jobTitle"},
		{"job title absent is fine", analyzeRequest(60, 25), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantField)
			assert.Contains(t, err.Error(), "Validation failed")
		})
	}
}

func TestValidateFeedbackRequest(t *testing.T) {
	valid := models.FeedbackRequest{
		Feedback: "This tool was genuinely useful.",
		Rating:   4,
	}

	tests := []struct {
		name      string
		mutate    func(*models.FeedbackRequest)
		wantField string
	}{
		{"valid minimal", func(r *models.FeedbackRequest) {}, ""},
		{"valid with optional fields", func(r *models.FeedbackRequest) {
			r.Email = "user@example.com"
			r.AnalysisID = "0b84a4f8-9f1c-4e6b-9a6e-0a9c8d3f21aa"
		}, ""},
		{"feedback too short", func(r *models.FeedbackRequest) { r.Feedback = "too short" }, "feedback"},
		{"feedback too long", func(r *models.FeedbackRequest) { r.Feedback = strings.Repeat("f", 2001) }, "feedback"},
		{"rating below range", func(r *models.FeedbackRequest) { r.Rating = 0 }, "rating"},
		{"rating above range", func(r *models.FeedbackRequest) { r.Rating = 6 }, "rating"},
		{"malformed email", func(r *models.FeedbackRequest) { r.Email = "not-an-email" }, "email"},
		{"malformed analysis id", func(r *models.FeedbackRequest) { r.AnalysisID = "1234" }, "analysisId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := ValidateStruct(&req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestValidateAggregatesAllViolations(t *testing.T) {
	req := models.AnalyzeRequest{
		ResumeText:     "short",
		JobDescription: "x",
	}

	err := ValidateStruct(&req)
	require.Error(t, err)

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 2)
	assert.Contains(t, err.Error(), "resumeText")
	assert.Contains(t, err.Error(), "jobDescription")
}

func TestValidateIsIdempotent(t *testing.T) {
	req := analyzeRequest(120, 40)
	before := req

	require.NoError(t, ValidateStruct(&req))
	require.NoError(t, ValidateStruct(&req))
	assert.Equal(t, before, req)
}
