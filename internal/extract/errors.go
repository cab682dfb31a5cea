// Package extract provides text and structure extraction from PDF resume bytes.
package extract

import "fmt"

// ParseError represents a failure to open or read the document bytes as
// a paginated PDF.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("document parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
