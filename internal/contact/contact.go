// Package contact extracts candidate contact details (name, email,
// phone) from free-form resume text using ordered heuristic chains.
package contact

import (
	"regexp"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var emailRe = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)

// Extract runs all three extractors over the text. Missing fields are
// left empty; sentinel substitution happens at the result boundary.
func Extract(text string) types.ContactInfo {
	return types.ContactInfo{
		Name:  ExtractName(text),
		Email: ExtractEmail(text),
		Phone: ExtractPhone(text),
	}
}

// ExtractEmail returns the first email-like token in the text, or an
// empty string when none is present.
func ExtractEmail(text string) string {
	return emailRe.FindString(text)
}
