package models

// SuccessResponse is the envelope for every 2xx JSON body.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// ErrorResponse is the envelope for every failure. No failure ever returns an
// empty or non-JSON body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Message string `json:"message,omitempty"`
}

// ExtractedText is the extract endpoint payload: raw text pulled from an
// uploaded resume file.
type ExtractedText struct {
	Text   string `json:"text"`
	Pages  int    `json:"pages,omitempty"`
	Method string `json:"method"`
}
