package contact

import (
	"fmt"
	"regexp"
	"strings"
)

// phonePatterns are tried in order, from the most tolerant form to the
// most specific. Within a pattern, matches are validated by digit count
// before the next pattern is consulted.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+?[1-9][0-9\s\-().]{8,}`),              // symbol-tolerant international form
	regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-\s]?\d{4}`),          // (123) 456-7890
	regexp.MustCompile(`\d{3}[-\s.]?\d{3}[-\s.]?\d{4}`),         // 123-456-7890, 123.456.7890
	regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`), // international with country code
	regexp.MustCompile(`\+?[1-9]\d{0,2}[-.\s]?\d{10}`),          // country code + 10 digits
	regexp.MustCompile(`\d{10}`),                                // bare 10-digit run
	regexp.MustCompile(`\+91[-\s]?\d{10}`),                      // +91 followed by 10 digits
	regexp.MustCompile(`\+91[-\s]?\d{5}[-\s]?\d{5}`),            // +91 with internal spacing
}

var (
	nonPhoneRe = regexp.MustCompile(`[^\d+]`)
	nonDigitRe = regexp.MustCompile(`\D`)
)

// ExtractPhone returns the first digit-count-valid phone number in the
// text, formatted by length, or an empty string when none is found.
func ExtractPhone(text string) string {
	for _, pattern := range phonePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			cleaned := nonPhoneRe.ReplaceAllString(match, "")
			digits := nonDigitRe.ReplaceAllString(cleaned, "")
			if len(digits) < 10 || len(digits) > 15 {
				continue
			}
			return formatPhone(cleaned, digits)
		}
	}
	return ""
}

// formatPhone renders a validated number in a fixed display form based
// on its digit count and country prefix.
func formatPhone(cleaned, digits string) string {
	switch {
	case len(digits) == 10:
		return fmt.Sprintf("%s-%s-%s", digits[:3], digits[3:6], digits[6:])
	case len(digits) == 12 && strings.HasPrefix(digits, "91"):
		return fmt.Sprintf("+%s %s-%s-%s", digits[:2], digits[2:5], digits[5:8], digits[8:])
	case len(digits) == 11 && strings.HasPrefix(digits, "1"):
		return fmt.Sprintf("+%s (%s) %s-%s", digits[:1], digits[1:4], digits[4:7], digits[7:])
	default:
		return cleaned
	}
}
