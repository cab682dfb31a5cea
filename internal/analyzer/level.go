package analyzer

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// PredictLevel assigns an experience-level label. The page-count rule
// short-circuits everything else: a one-page resume is always Fresher.
func PredictLevel(text string, pages int) types.CandidateLevel {
	lower := strings.ToLower(text)

	if pages <= 1 {
		return types.LevelFresher
	}
	if strings.Contains(lower, "internship") {
		return types.LevelIntermediate
	}
	if strings.Contains(lower, "experience") || strings.Contains(lower, "work experience") {
		return types.LevelExperienced
	}
	return types.LevelFresher
}
