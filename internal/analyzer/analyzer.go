// Package analyzer orchestrates the resume analysis pipeline: text
// extraction, contact and skill extraction, field classification,
// quality scoring, level prediction and result aggregation.
package analyzer

import (
	"time"

	"github.com/jonathan/resume-analyzer/internal/classify"
	"github.com/jonathan/resume-analyzer/internal/contact"
	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Extractor converts document bytes into plain text plus a page count.
// The production implementation is internal/extract; tests inject
// fakes.
type Extractor interface {
	Extract(data []byte) (*types.ExtractedText, error)
}

// Analyzer is the single entry point of the core. It is stateless
// beyond its injected extractor and the package-level keyword tables,
// all of which are read-only, so one Analyzer is safe for unlimited
// concurrent calls.
type Analyzer struct {
	extractor Extractor
	now       func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithExtractor replaces the document extractor.
func WithExtractor(e Extractor) Option {
	return func(a *Analyzer) { a.extractor = e }
}

// WithClock replaces the timestamp source used for identity stamping.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// New creates an Analyzer with the PDF extractor.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		extractor: extract.New(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the full pipeline over the document bytes. The optional
// identity is stamped onto the result without altering any computed
// field. Unreadable documents surface the extractor's parse error.
func (a *Analyzer) Analyze(data []byte, identity *types.Identity) (*types.AnalysisResult, error) {
	extracted, err := a.extractor.Extract(data)
	if err != nil {
		return nil, err
	}
	text := extracted.Text
	pages := extracted.Pages
	if pages < 1 {
		pages = 1
	}

	info := contact.Extract(text).Sentineled()
	skillList := skills.Extract(text)
	prediction := classify.Detect(skillList)
	resumeScore, tips := scoring.CompletenessScore(text)
	atsScore := scoring.ATSScore(text, classify.AllKeywords())

	result := &types.AnalysisResult{
		Name:               info.Name,
		Email:              info.Email,
		MobileNumber:       info.Phone,
		Degree:             ExtractDegree(text),
		NoOfPages:          pages,
		CandidateLevel:     PredictLevel(text, pages),
		PredictedField:     prediction.Field,
		Skills:             skillList,
		RecommendedSkills:  prediction.RecommendedSkills,
		RecommendedCourses: prediction.RecommendedCourses,
		ResumeScore:        resumeScore,
		Tips:               tips,
		ATSScore:           atsScore,
		RawText:            text,
	}

	if identity != nil {
		result.UserID = identity.UserID
		result.AnalysisDate = a.now().UTC().Format(time.RFC3339)
		result.OriginalFilename = identity.Filename
	}

	return result, nil
}
