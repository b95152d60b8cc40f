package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// Completion is the provider-neutral response envelope. The analyzer branches
// on this shape only, never on the Gemini wire format.
type Completion struct {
	Text          string
	FinishReason  string
	BlockReason   string
	HasCandidates bool
}

// FinishReasonStop is the only finish reason treated as a normal completion.
// MAX_TOKENS is tolerated downstream because a usable JSON prefix may remain.
const (
	FinishReasonStop      = "STOP"
	FinishReasonMaxTokens = "MAX_TOKENS"
)

// ProviderError is a transport-level failure from the completion provider,
// reduced to the status code and whatever detail the error body carried.
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("provider request failed with status %d", e.Code)
	}
	return fmt.Sprintf("provider request failed with status %d: %s", e.Code, e.Message)
}

// CompletionProvider issues one completion request composed of a system
// instruction and the user text.
type CompletionProvider interface {
	Complete(ctx context.Context, system, user string) (*Completion, error)
}

type geminiService struct {
	client    *genai.Client
	modelName string
}

// NewGeminiService builds the Gemini-backed CompletionProvider.
func NewGeminiService(apiKey string) (CompletionProvider, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: "gemini-2.5-flash",
	}, nil
}

// Complete implements CompletionProvider. Generation is pinned for
// deterministic JSON output: temperature 0, topP/topK 1, thinking disabled,
// and safety thresholds blocking medium-and-above severity only.
func (g *geminiService) Complete(ctx context.Context, system, user string) (*Completion, error) {
	temperature := float32(0)
	topP := float32(1)
	topK := float32(1)
	thinkingBudget := int32(0)

	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		TopP:            &topP,
		TopK:            &topK,
		MaxOutputTokens: 8192,
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: &thinkingBudget,
		},
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		},
	}

	contents := []*genai.Content{
		{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				{Text: system},
				{Text: user},
			},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			log.Printf("❌ Gemini API error %d: %s\n", apiErr.Code, apiErr.Message)
			return nil, &ProviderError{Code: apiErr.Code, Message: apiErr.Message}
		}
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	out := &Completion{}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		out.BlockReason = string(resp.PromptFeedback.BlockReason)
		return out, nil
	}

	if len(resp.Candidates) == 0 {
		return out, nil
	}
	out.HasCandidates = true

	candidate := resp.Candidates[0]
	out.FinishReason = string(candidate.FinishReason)

	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part != nil && part.Text != "" {
				out.Text = part.Text
				break
			}
		}
	}

	return out, nil
}
