package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"scanresume/resume-analyzer/internal/models"
)

type AnalyzerService interface {
	AnalyzeResume(ctx context.Context, jobDescription, resumeText string) (*models.AnalysisResult, error)
}

type analyzerService struct {
	provider      CompletionProvider
	promptBuilder *PromptBuilder
}

func NewAnalyzerService(provider CompletionProvider) AnalyzerService {
	return &analyzerService{
		provider:      provider,
		promptBuilder: NewPromptBuilder(),
	}
}

// AnalyzeResume runs one screening round trip: compose the rubric prompt,
// call the completion provider, and reconcile whatever comes back into an
// AnalysisResult. Truncated-but-parseable output still succeeds; output that
// merely looks like an attempted analysis degrades to a synthetic fallback
// instead of failing hard.
func (a *analyzerService) AnalyzeResume(ctx context.Context, jobDescription, resumeText string) (*models.AnalysisResult, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, errors.New("could not extract text from the resume file, please check the file and try again")
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, errors.New("job description is required for analysis")
	}

	system := a.promptBuilder.BuildAnalysisSystemPrompt()
	user := a.promptBuilder.BuildAnalysisUserContent(jobDescription, resumeText)

	log.Printf("📝 Sending analysis request: job description %d chars, resume %d chars\n",
		len(jobDescription), len(resumeText))

	completion, err := a.provider.Complete(ctx, system, user)
	if err != nil {
		var provErr *ProviderError
		if errors.As(err, &provErr) {
			return nil, translateProviderError(provErr)
		}
		return nil, fmt.Errorf("failed to analyze resume: %w", err)
	}

	if completion.BlockReason != "" {
		return nil, fmt.Errorf("content blocked by the model provider: %s", completion.BlockReason)
	}

	if !completion.HasCandidates {
		return nil, errors.New("no response generated")
	}

	if reason := completion.FinishReason; reason != "" && reason != FinishReasonStop {
		log.Printf("⚠️  Generation did not complete normally: %s\n", reason)
		if reason != FinishReasonMaxTokens {
			return nil, fmt.Errorf("generation failed with reason: %s", reason)
		}
		// Truncation only: a usable JSON prefix may still be present.
	}

	if completion.Text == "" {
		return nil, errors.New("no content returned")
	}

	result, err := ExtractAnalysisResult(completion.Text)
	if err != nil {
		if looksLikeAttemptedAnalysis(completion.Text) {
			log.Println("⚠️  Response unparseable, returning synthetic fallback result")
			return stamp(syntheticFallbackResult()), nil
		}
		return nil, errors.New("failed to parse the analysis result")
	}

	return stamp(result), nil
}

// translateProviderError maps known provider status codes to caller-facing
// messages; everything else carries the raw status.
func translateProviderError(err *ProviderError) error {
	switch err.Code {
	case 429:
		return errors.New("rate limit exceeded, please try again later")
	case 400:
		detail := err.Message
		if detail == "" {
			detail = "please check your inputs"
		}
		return fmt.Errorf("invalid analysis request: %s", detail)
	default:
		if err.Message != "" {
			return fmt.Errorf("analysis provider error: %s", err.Message)
		}
		return fmt.Errorf("analysis request failed with status %d", err.Code)
	}
}

// looksLikeAttemptedAnalysis is the fallback gate: raw text mentioning both
// leading category keys is treated as an analysis the model tried and failed
// to serialize.
func looksLikeAttemptedAnalysis(text string) bool {
	return strings.Contains(text, "technicalSkills") && strings.Contains(text, "experience")
}

func stamp(result *models.AnalysisResult) *models.AnalysisResult {
	now := time.Now().UTC()
	result.AnalysisID = uuid.NewString()
	result.Timestamp = &now
	return result
}

// syntheticFallbackResult builds the fixed-shape, mid-range degraded result
// returned when the model's output was almost-but-not-quite valid JSON.
func syntheticFallbackResult() *models.AnalysisResult {
	return &models.AnalysisResult{
		OverallScore: 50,
		TechnicalSkills: models.CategoryResult{
			Score:    12,
			MaxScore: models.MaxScoreTechnicalSkills,
			Criteria: []models.Criterion{
				{Name: "Skills Matching", Status: models.StatusPartial, Comments: "Could not fully analyze skills."},
			},
			Summary: "Technical skills analysis incomplete due to processing error.",
		},
		Experience: models.CategoryResult{
			Score:    12,
			MaxScore: models.MaxScoreExperience,
			Criteria: []models.Criterion{
				{Name: "Experience Relevance", Status: models.StatusPartial, Comments: "Could not fully analyze experience."},
			},
			Summary: "Experience analysis incomplete due to processing error.",
		},
		Education: models.CategoryResult{
			Score:    7,
			MaxScore: models.MaxScoreEducation,
			Criteria: []models.Criterion{
				{Name: "Education Requirements", Status: models.StatusPartial, Comments: "Could not fully analyze education."},
			},
			Summary: "Education analysis incomplete due to processing error.",
		},
		Formatting: models.CategoryResult{
			Score:    7,
			MaxScore: models.MaxScoreFormatting,
			Criteria: []models.Criterion{
				{Name: "ATS Compatibility", Status: models.StatusPartial, Comments: "Could not fully analyze formatting."},
			},
			Summary: "Formatting analysis incomplete due to processing error.",
		},
		SoftSkills: models.CategoryResult{
			Score:    10,
			MaxScore: models.MaxScoreSoftSkills,
			Criteria: []models.Criterion{
				{Name: "Communication Skills", Status: models.StatusPartial, Comments: "Could not fully analyze soft skills."},
			},
			Summary: "Soft skills analysis incomplete due to processing error.",
		},
		ImprovementSuggestions: []string{
			"Please try analyzing again with a clearer resume format.",
			"Ensure your resume text is properly formatted and readable.",
			"Consider simplifying complex formatting in your resume for better analysis.",
		},
		Source: models.SourceFallback,
	}
}
