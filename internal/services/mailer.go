package services

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/resend/resend-go/v2"

	"scanresume/resume-analyzer/internal/models"
)

// FeedbackMailer delivers user feedback to the team inbox and returns the
// provider's message id.
type FeedbackMailer interface {
	SendFeedback(ctx context.Context, req *models.FeedbackRequest) (string, error)
}

type resendMailer struct {
	client *resend.Client
	from   string
	to     string
}

func NewFeedbackMailer(apiKey, from, to string) FeedbackMailer {
	return &resendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
	}
}

// SendFeedback implements FeedbackMailer.
func (m *resendMailer) SendFeedback(ctx context.Context, req *models.FeedbackRequest) (string, error) {
	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		Subject: fmt.Sprintf("New Feedback - Rating: %d/5", req.Rating),
		Html:    feedbackHTML(req),
	})
	if err != nil {
		return "", fmt.Errorf("failed to send feedback email: %w", err)
	}
	return sent.Id, nil
}

func feedbackHTML(req *models.FeedbackRequest) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">`)
	b.WriteString("<h2>New Feedback from Scanresume</h2>")
	fmt.Fprintf(&b, "<p><strong>Rating:</strong> %d/5</p>", req.Rating)
	if req.Email != "" {
		fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(req.Email))
	}
	if req.AnalysisID != "" {
		fmt.Fprintf(&b, "<p><strong>Analysis ID:</strong> %s</p>", html.EscapeString(req.AnalysisID))
	}
	fmt.Fprintf(&b, `<div style="background-color: #f9f9f9; padding: 15px;"><h3>Feedback:</h3><p style="white-space: pre-line;">%s</p></div>`,
		html.EscapeString(req.Feedback))
	b.WriteString("</div>")
	return b.String()
}
