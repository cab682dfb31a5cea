package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/classify"
)

func TestATSScore_Bounds(t *testing.T) {
	keywords := classify.AllKeywords()
	texts := []string{
		"",
		"plain text with nothing relevant",
		strings.Repeat("education experience projects skills certifications developed created built designed implemented optimized analyzed react django html css page ", 60),
	}

	for _, text := range texts {
		score := ATSScore(text, keywords)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestATSScore_FormattingPenalty(t *testing.T) {
	base := "education experience skills"
	noisy := base + " ====" // visual-noise marker

	clean := ATSScore(base, nil)
	penalized := ATSScore(noisy, nil)
	assert.Equal(t, 10, clean-penalized, "marker should cost exactly 10 points")
}

func TestATSScore_MarkerCheckUsesOriginalCase(t *testing.T) {
	// Markers are non-alphabetic, so lowercasing would not change them;
	// the check still runs against the original text by contract.
	withMarker := ATSScore("skills *****", nil)
	without := ATSScore("skills", nil)
	assert.Equal(t, 10, without-withMarker)
}

func TestATSScore_ReadabilityTiers(t *testing.T) {
	short := strings.Repeat("word ", 100)   // <=250 words -> 5
	midLow := strings.Repeat("word ", 500)  // 250<w<800 -> 10
	midHigh := strings.Repeat("word ", 900) // 800<=w<1200 -> 7

	assert.Equal(t, 5, ATSScore(midLow, nil)-ATSScore(short, nil))
	assert.Equal(t, 3, ATSScore(midLow, nil)-ATSScore(midHigh, nil))
}

func TestATSScore_LengthHeuristic(t *testing.T) {
	withPage := ATSScore("resume fits one page", nil)
	without := ATSScore("resume fits one sheet", nil)
	assert.Equal(t, 2, withPage-without)
}

func TestATSScore_ActionVerbCap(t *testing.T) {
	// All seven verbs present; contribution caps at 10, not 14.
	allVerbs := "developed created built designed implemented optimized analyzed"
	fiveVerbs := "developed created built designed implemented"
	assert.Equal(t, 0, ATSScore(allVerbs, nil)-ATSScore(fiveVerbs, nil))
}

func TestCompletenessScore_AllPresent(t *testing.T) {
	text := `Objective
Education
Work Experience
Internship
Skills
Projects
Certifications
Achievements
Hobbies`
	score, tips := CompletenessScore(text)
	assert.Equal(t, 95, score)
	assert.Empty(t, tips)
}

func TestCompletenessScore_NonePresent(t *testing.T) {
	score, tips := CompletenessScore("completely unrelated text")
	assert.Equal(t, 0, score)
	require.Len(t, tips, 9)
	assert.Equal(t, []string{
		"Add a career objective or summary.",
		"Add an education section.",
		"Mention your work experience or projects.",
		"Include internships if available.",
		"Add a dedicated skills section.",
		"Include project details.",
		"Add certifications.",
		"Include achievements.",
		"Optionally add hobbies/interests.",
	}, tips)
}

func TestCompletenessScore_PartialTipsKeepOrder(t *testing.T) {
	// Education and skills present, everything else missing.
	score, tips := CompletenessScore("education and skills only")
	assert.Equal(t, 19, score)
	require.NotEmpty(t, tips)
	assert.Equal(t, "Add a career objective or summary.", tips[0])
	assert.NotContains(t, tips, "Add an education section.")
	assert.NotContains(t, tips, "Add a dedicated skills section.")
}
