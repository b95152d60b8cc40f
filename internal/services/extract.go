package services

import (
	"encoding/json"
	"errors"

	"scanresume/resume-analyzer/internal/models"
)

// ErrResultNotFound signals that no structurally valid analysis object could
// be recovered from the model's text.
var ErrResultNotFound = errors.New("no valid analysis result found in response")

// ExtractAnalysisResult recovers an AnalysisResult from model output that was
// instructed to be JSON-only but may not be.
//
// A direct parse of the full text is tried first; when the whole text is
// valid JSON its shape verdict is final and no scanning happens. Otherwise a
// single pass over the text collects every maximal balanced {...} span via a
// brace-depth counter, and the first span that both parses and passes the
// structural check wins. Braces inside string literals are not treated
// specially; a span that miscounts because of them simply fails to parse and
// is skipped.
func ExtractAnalysisResult(text string) (*models.AnalysisResult, error) {
	if raw := json.RawMessage(text); json.Valid(raw) {
		var probe map[string]any
		if err := json.Unmarshal(raw, &probe); err != nil || !validAnalysisShape(probe) {
			return nil, ErrResultNotFound
		}
		return decodeAnalysisResult(raw)
	}

	for _, span := range balancedObjectSpans(text) {
		var probe map[string]any
		if err := json.Unmarshal([]byte(span), &probe); err != nil {
			continue
		}
		if !validAnalysisShape(probe) {
			continue
		}
		return decodeAnalysisResult([]byte(span))
	}

	return nil, ErrResultNotFound
}

// balancedObjectSpans returns every maximal {...} span whose brace depth
// returns to zero, in order of appearance.
func balancedObjectSpans(text string) []string {
	var spans []string
	depth := 0
	start := -1

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && start != -1 {
				spans = append(spans, text[start:i+1])
			}
		}
	}

	return spans
}

// validAnalysisShape is the structural check: numeric overallScore, all five
// categories present as objects, and improvementSuggestions as an array.
// Per-field numeric bounds are deliberately not enforced here.
func validAnalysisShape(v map[string]any) bool {
	if v == nil {
		return false
	}
	if _, ok := v["overallScore"].(float64); !ok {
		return false
	}
	for _, key := range []string{"technicalSkills", "experience", "education", "formatting", "softSkills"} {
		if _, ok := v[key].(map[string]any); !ok {
			return false
		}
	}
	_, ok := v["improvementSuggestions"].([]any)
	return ok
}

func decodeAnalysisResult(raw []byte) (*models.AnalysisResult, error) {
	var result models.AnalysisResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, ErrResultNotFound
	}
	result.Source = models.SourceParsed
	return &result, nil
}
