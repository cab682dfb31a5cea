package scoring

import "strings"

// completenessCheck is one entry in the fixed checklist: any synonym
// present adds the points; absence appends the tip.
type completenessCheck struct {
	words  []string
	points int
	tip    string
}

// completenessChecks in evaluation order. The weights sum to 95.
var completenessChecks = []completenessCheck{
	{[]string{"objective", "summary"}, 6, "Add a career objective or summary."},
	{[]string{"education", "school", "college"}, 12, "Add an education section."},
	{[]string{"experience", "work"}, 16, "Mention your work experience or projects."},
	{[]string{"internship"}, 6, "Include internships if available."},
	{[]string{"skills"}, 7, "Add a dedicated skills section."},
	{[]string{"projects", "project"}, 19, "Include project details."},
	{[]string{"certification", "certifications"}, 12, "Add certifications."},
	{[]string{"achievements"}, 13, "Include achievements."},
	{[]string{"hobbies", "interests"}, 4, "Optionally add hobbies/interests."},
}

// CompletenessScore runs the nine-section checklist over the text and
// returns the summed score plus one tip per failed check, in check
// order.
func CompletenessScore(text string) (int, []string) {
	lower := strings.ToLower(text)

	score := 0
	tips := make([]string, 0, len(completenessChecks))
	for _, check := range completenessChecks {
		present := false
		for _, w := range check.words {
			if strings.Contains(lower, w) {
				present = true
				break
			}
		}
		if present {
			score += check.points
		} else {
			tips = append(tips, check.tip)
		}
	}

	return score, tips
}
