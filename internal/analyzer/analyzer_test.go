package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// fakeExtractor returns canned text and page counts so pipeline tests
// do not depend on real PDF bytes.
type fakeExtractor struct {
	text  string
	pages int
	err   error
}

func (f *fakeExtractor) Extract(_ []byte) (*types.ExtractedText, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &types.ExtractedText{Text: f.text, Pages: f.pages}, nil
}

const sampleResume = `VISHAL BHINGARDE
Bachelor of Technology in Computer Science
Email: vishalbhingarde@example.com
Phone: +919876543210

OBJECTIVE
Aspiring web developer.

EDUCATION
B.Tech, Example Institute of Technology

SKILLS
Python, React, HTML, CSS, JavaScript

PROJECTS
Developed a portfolio website. Built REST APIs.

INTERNSHIP
Web development internship at Example Corp.
`

func newTestAnalyzer(text string, pages int) *Analyzer {
	return New(
		WithExtractor(&fakeExtractor{text: text, pages: pages}),
		WithClock(func() time.Time {
			return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		}),
	)
}

func TestAnalyze_FullPipeline(t *testing.T) {
	a := newTestAnalyzer(sampleResume, 2)

	result, err := a.Analyze([]byte("irrelevant"), nil)
	require.NoError(t, err)

	assert.Equal(t, "Vishal Bhingarde", result.Name)
	assert.Equal(t, "vishalbhingarde@example.com", result.Email)
	assert.Equal(t, "+91 987-654-3210", result.MobileNumber)
	assert.Equal(t, "Bachelor of Technology in Computer Science", result.Degree)
	assert.Equal(t, 2, result.NoOfPages)
	assert.Equal(t, types.LevelIntermediate, result.CandidateLevel)
	assert.Equal(t, types.FieldWebDev, result.PredictedField)
	assert.Contains(t, result.Skills, "Python")
	assert.Contains(t, result.Skills, "React")
	assert.NotEmpty(t, result.RecommendedCourses)
	assert.Empty(t, result.RecommendedSkills)
	assert.Equal(t, sampleResume, result.RawText)
}

func TestAnalyze_RawTextPreserved(t *testing.T) {
	a := newTestAnalyzer("some resume text", 1)
	result, err := a.Analyze(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "some resume text", result.RawText)
}

func TestAnalyze_ScoreBounds(t *testing.T) {
	a := newTestAnalyzer(sampleResume, 2)
	result, err := a.Analyze(nil, nil)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.ATSScore, 0)
	assert.LessOrEqual(t, result.ATSScore, 100)
	assert.GreaterOrEqual(t, result.ResumeScore, 0)
	assert.LessOrEqual(t, result.ResumeScore, 95)
	assert.GreaterOrEqual(t, result.NoOfPages, 1)
}

func TestAnalyze_Sentinels(t *testing.T) {
	a := newTestAnalyzer("a line of nothing much in lower case going on for quite a while", 1)
	result, err := a.Analyze(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, types.NameNotFound, result.Name)
	assert.Equal(t, types.NotSpecified, result.Email)
	assert.Equal(t, types.NotSpecified, result.MobileNumber)
	assert.Equal(t, types.DegreeNotFound, result.Degree)
	assert.Equal(t, types.FieldNotDetected, result.PredictedField)
	assert.Empty(t, result.Skills)
}

func TestAnalyze_SinglePageShortCircuitsLevel(t *testing.T) {
	// Internship and experience markers are present, but one page
	// forces Fresher.
	a := newTestAnalyzer("internship and work experience everywhere", 1)
	result, err := a.Analyze(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, types.LevelFresher, result.CandidateLevel)
}

func TestAnalyze_LevelRules(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		pages int
		want  types.CandidateLevel
	}{
		{"internship beats experience", "internship then experience", 2, types.LevelIntermediate},
		{"experience only", "years of experience", 2, types.LevelExperienced},
		{"work alone is not enough", "hard work", 2, types.LevelFresher},
		{"default", "nothing of note", 3, types.LevelFresher},
		{"zero pages normalized", "text", 0, types.LevelFresher},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAnalyzer(tt.text, tt.pages)
			result, err := a.Analyze(nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.CandidateLevel)
			assert.GreaterOrEqual(t, result.NoOfPages, 1)
		})
	}
}

func TestAnalyze_IdentityStamping(t *testing.T) {
	a := newTestAnalyzer(sampleResume, 2)

	plain, err := a.Analyze(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, plain.UserID)
	assert.Empty(t, plain.AnalysisDate)
	assert.Empty(t, plain.OriginalFilename)

	identified, err := a.Analyze(nil, &types.Identity{UserID: "user-123", Filename: "resume.pdf"})
	require.NoError(t, err)
	assert.Equal(t, "user-123", identified.UserID)
	assert.Equal(t, "2024-03-01T12:00:00Z", identified.AnalysisDate)
	assert.Equal(t, "resume.pdf", identified.OriginalFilename)

	// Identity is purely additive: every computed field matches.
	identified.UserID, identified.AnalysisDate, identified.OriginalFilename = "", "", ""
	assert.Equal(t, plain, identified)
}

func TestAnalyze_Idempotent(t *testing.T) {
	a := newTestAnalyzer(sampleResume, 2)

	first, err := a.Analyze(nil, nil)
	require.NoError(t, err)
	second, err := a.Analyze(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnalyze_ExtractorErrorSurfaces(t *testing.T) {
	a := New(WithExtractor(&fakeExtractor{err: assert.AnError}))
	_, err := a.Analyze([]byte("bogus"), nil)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestPredictLevel(t *testing.T) {
	assert.Equal(t, types.LevelFresher, PredictLevel("internship", 1))
	assert.Equal(t, types.LevelIntermediate, PredictLevel("Internship at X", 2))
	assert.Equal(t, types.LevelExperienced, PredictLevel("Work Experience", 2))
	assert.Equal(t, types.LevelFresher, PredictLevel("", 2))
}

func TestExtractDegree(t *testing.T) {
	text := "JOHN SMITH\n  Master of Science, Example University  \nSkills: Go"
	assert.Equal(t, "Master of Science, Example University", ExtractDegree(text))
	assert.Equal(t, types.DegreeNotFound, ExtractDegree("no education lines"))
}
