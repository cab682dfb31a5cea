package classify

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Detect predicts the candidate's field from the already-extracted
// skill list. Scoring counts exact case-insensitive membership of each
// field keyword in the skill list, not the raw text. When every field
// scores zero the result is Not Detected with empty recommendations.
func Detect(skillList []string) types.FieldPrediction {
	skillSet := make(map[string]struct{}, len(skillList))
	for _, s := range skillList {
		skillSet[strings.ToLower(s)] = struct{}{}
	}

	best := fields[0]
	bestScore := score(best.keywords, skillSet)
	for _, f := range fields[1:] {
		if s := score(f.keywords, skillSet); s > bestScore {
			best = f
			bestScore = s
		}
	}

	if bestScore == 0 {
		return types.FieldPrediction{
			Field:              types.FieldNotDetected,
			RecommendedCourses: []string{},
			RecommendedSkills:  []string{},
		}
	}

	courses := make([]string, len(best.courses))
	copy(courses, best.courses)

	return types.FieldPrediction{
		Field:              best.field,
		RecommendedCourses: courses,
		RecommendedSkills:  []string{},
	}
}

// score counts how many of the field's keywords appear in the skill set.
func score(keywords []string, skillSet map[string]struct{}) int {
	n := 0
	for _, kw := range keywords {
		if _, ok := skillSet[kw]; ok {
			n++
		}
	}
	return n
}
