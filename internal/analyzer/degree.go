package analyzer

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// educationKeywords mark a line as a degree statement.
var educationKeywords = []string{
	"bachelor", "master", "phd", "degree", "b.tech", "m.tech", "b.sc", "m.sc",
}

// ExtractDegree returns the first line mentioning an education keyword,
// stripped but otherwise verbatim, or the N/A sentinel.
func ExtractDegree(text string) string {
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		for _, kw := range educationKeywords {
			if strings.Contains(lower, kw) {
				return strings.TrimSpace(line)
			}
		}
	}
	return types.DegreeNotFound
}
