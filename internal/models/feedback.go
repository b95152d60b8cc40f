package models

// FeedbackRequest is the feedback endpoint payload. Older clients omit the
// rating; the handler defaults it to 5 before validation.
type FeedbackRequest struct {
	Feedback   string `json:"feedback" validate:"required,min=10,max=2000"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	AnalysisID string `json:"analysisId,omitempty" validate:"omitempty,uuid"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
}

// FeedbackData is the success payload: the mail provider's message id.
type FeedbackData struct {
	ID string `json:"id"`
}
