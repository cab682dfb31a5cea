package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Extractor converts PDF resume bytes into plain text and a page count.
// It is stateless and safe for concurrent use.
type Extractor struct{}

// New creates a new Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract parses the document once and returns the concatenated page
// text plus the page count. The page count is always at least one.
// Unreadable bytes produce a *ParseError.
func (e *Extractor) Extract(data []byte) (*types.ExtractedText, error) {
	reader, err := open(data)
	if err != nil {
		return nil, &ParseError{Message: "failed to open document", Cause: err}
	}

	pages := reader.NumPage()
	if pages < 1 {
		pages = 1
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A page that cannot be decoded contributes no text; the
			// remaining pages are still extracted in order.
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return &types.ExtractedText{
		Text:  strings.TrimSpace(sb.String()),
		Pages: pages,
	}, nil
}

// ExtractText returns only the concatenated page text.
func (e *Extractor) ExtractText(data []byte) (string, error) {
	extracted, err := e.Extract(data)
	if err != nil {
		return "", err
	}
	return extracted.Text, nil
}

// CountPages returns the number of pages in the document, degrading to
// one when the bytes cannot be opened as a PDF.
func (e *Extractor) CountPages(data []byte) int {
	reader, err := open(data)
	if err != nil {
		return 1
	}
	if pages := reader.NumPage(); pages > 0 {
		return pages
	}
	return 1
}

// open wraps pdf.NewReader. The underlying reader panics on some
// malformed cross-reference tables, so the panic is converted into an
// error here to keep the degradation contract.
func open(data []byte) (r *pdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r = nil
			err = fmt.Errorf("pdf reader panic: %v", rec)
		}
	}()
	return pdf.NewReader(bytes.NewReader(data), int64(len(data)))
}
