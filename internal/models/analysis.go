package models

import "time"

// CriterionStatus is one of the three verdicts the screener can give a criterion.
type CriterionStatus string

const (
	StatusYes     CriterionStatus = "Yes"
	StatusNo      CriterionStatus = "No"
	StatusPartial CriterionStatus = "Partial"
)

// ResultSource tells callers whether an AnalysisResult came straight from the
// model or was synthesized locally after an unparseable response.
type ResultSource string

const (
	SourceParsed   ResultSource = "parsed"
	SourceFallback ResultSource = "fallback"
)

// Maximum score per category. Fixed product constants; the prompt instructs
// the model to score within these bounds.
const (
	MaxScoreTechnicalSkills = 25
	MaxScoreExperience      = 25
	MaxScoreEducation       = 15
	MaxScoreFormatting      = 15
	MaxScoreSoftSkills      = 20
)

// AnalyzeRequest is the analyze endpoint payload. Bounds are product
// constraints carried through the validation layer.
type AnalyzeRequest struct {
	ResumeText     string `json:"resumeText" validate:"required,min=50,max=50000"`
	JobDescription string `json:"jobDescription" validate:"required,min=20,max=10000"`
	JobTitle       string `json:"jobTitle,omitempty" validate:"omitempty,min=2,max=100"`
}

// Criterion is one named check within a category.
type Criterion struct {
	Name     string          `json:"name"`
	Status   CriterionStatus `json:"status"`
	Comments string          `json:"comments"`
}

// CategoryResult holds the score and criteria for one of the five fixed
// scoring categories.
type CategoryResult struct {
	Score    float64     `json:"score"`
	MaxScore int         `json:"maxScore"`
	Criteria []Criterion `json:"criteria"`
	Summary  string      `json:"summary"`
}

// AnalysisResult is the structured critique returned to the caller. It is
// built once per analysis and never mutated or persisted.
type AnalysisResult struct {
	OverallScore           float64        `json:"overallScore"`
	TechnicalSkills        CategoryResult `json:"technicalSkills"`
	Experience             CategoryResult `json:"experience"`
	Education              CategoryResult `json:"education"`
	Formatting             CategoryResult `json:"formatting"`
	SoftSkills             CategoryResult `json:"softSkills"`
	ImprovementSuggestions []string       `json:"improvementSuggestions"`
	AnalysisID             string         `json:"analysisId,omitempty"`
	Timestamp              *time.Time     `json:"timestamp,omitempty"`

	// Source is diagnostic only and never serialized to the client.
	Source ResultSource `json:"-"`
}
