package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"scanresume/resume-analyzer/internal/models"
)

// Supported upload MIME types.
const (
	MimePDF   = "application/pdf"
	MimeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePlain = "text/plain"
)

// ErrUnsupportedFileType marks uploads the extractor cannot read.
type ErrUnsupportedFileType struct {
	Mime string
}

func (e *ErrUnsupportedFileType) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Mime)
}

// TextExtractor pulls plain text out of an uploaded resume file. It is a
// pure File -> text boundary with no retries of its own.
type TextExtractor interface {
	ExtractText(mime string, data []byte) (*models.ExtractedText, error)
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// ExtractText implements TextExtractor.
func (t *textExtractor) ExtractText(mime string, data []byte) (*models.ExtractedText, error) {
	switch mime {
	case MimePlain:
		return &models.ExtractedText{Text: string(data), Method: "plain"}, nil
	case MimePDF:
		return extractPDF(data)
	case MimeDOCX:
		return extractDOCX(data)
	default:
		return nil, &ErrUnsupportedFileType{Mime: mime}
	}
}

func extractPDF(data []byte) (*models.ExtractedText, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest.
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text content found in PDF")
	}

	return &models.ExtractedText{Text: CleanText(text), Pages: totalPage, Method: "pdf"}, nil
}

func extractDOCX(data []byte) (*models.ExtractedText, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer doc.Close()

	text := doc.Editable().GetContent()
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text content found in DOCX")
	}

	return &models.ExtractedText{Text: CleanText(text), Method: "docx"}, nil
}

// CleanText trims and collapses blank lines from extracted text.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
