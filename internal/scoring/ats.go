// Package scoring implements the rule-based resume quality rubrics:
// the ATS score and the completeness score with remediation tips.
package scoring

import (
	"math"
	"strings"
)

// Fixed tables for the ATS sub-scores.
var (
	sectionNames = []string{"education", "experience", "projects", "skills", "certifications"}

	actionVerbs = []string{
		"developed", "created", "built", "designed",
		"implemented", "optimized", "analyzed",
	}

	// Visual-noise markers checked against the original, un-lowercased
	// text.
	formattingMarkers = []string{"......", "____", "====", "*****"}
)

// ATSScore estimates how the resume would fare against automated
// applicant-tracking checks. The keyword universe is supplied by the
// caller (the union of all field keyword lists); matching is literal
// substring containment over the lower-cased text.
func ATSScore(text string, keywords []string) int {
	lower := strings.ToLower(text)
	score := 0.0

	// Keyword match, max 30.
	if len(keywords) > 0 {
		matched := 0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				matched++
			}
		}
		score += math.Min(float64(matched)/float64(len(keywords))*30, 30)
	}

	// Section completeness, max 20.
	found := 0
	for _, sec := range sectionNames {
		if strings.Contains(lower, sec) {
			found++
		}
	}
	score += float64(found) / float64(len(sectionNames)) * 20

	// Action-verb usage, max 10.
	verbs := 0
	for _, v := range actionVerbs {
		if strings.Contains(lower, v) {
			verbs++
		}
	}
	score += math.Min(float64(verbs*2), 10)

	// Formatting: flat 20, reduced to 10 when visual noise is present.
	formattingScore := 20.0
	for _, marker := range formattingMarkers {
		if strings.Contains(text, marker) {
			formattingScore = 10
			break
		}
	}
	score += formattingScore

	// Readability, tiered by word count.
	words := len(strings.Fields(lower))
	switch {
	case words > 250 && words < 800:
		score += 10
	case words >= 800 && words < 1200:
		score += 7
	default:
		score += 5
	}

	// Length heuristic.
	if strings.Contains(lower, "page") || strings.Contains(lower, "pages") {
		score += 10
	} else {
		score += 8
	}

	return clamp(int(math.Round(score)), 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
