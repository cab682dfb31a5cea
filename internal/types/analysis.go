// Package types provides type definitions for structured data used throughout the resume-analyzer system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Sentinel values used at the external JSON boundary in place of
// null/absent fields. Downstream consumers branch on these values,
// never on key presence.
const (
	NameNotFound   = "Not Found"
	NotSpecified   = "Not specified"
	DegreeNotFound = "N/A"
)

// CandidateLevel is the experience-level label produced by the analyzer.
type CandidateLevel string

// The closed set of levels the rule chain can produce. A "Senior" label
// exists in adjacent profile schemas but is never emitted here.
const (
	LevelFresher      CandidateLevel = "Fresher"
	LevelIntermediate CandidateLevel = "Intermediate"
	LevelExperienced  CandidateLevel = "Experienced"
)

// Field is a predicted professional domain label.
type Field string

// Predicted field labels, in classifier declaration order, plus the
// zero-match fallback.
const (
	FieldDataScience Field = "Data Science"
	FieldWebDev      Field = "Web Development"
	FieldAndroid     Field = "Android Development"
	FieldIOS         Field = "iOS Development"
	FieldUIUX        Field = "UI/UX Design"
	FieldNotDetected Field = "Not Detected"
)

// ContactInfo holds the heuristically extracted contact fields.
// An empty string means the field was not found; sentinel substitution
// happens when the AnalysisResult is assembled.
type ContactInfo struct {
	Name  string
	Email string
	Phone string
}

// ExtractedText is the output of the text & structure extractor:
// order-preserving concatenation of all pages plus a page count that is
// always at least one.
type ExtractedText struct {
	Text  string
	Pages int
}

// FieldPrediction is the classifier output: a field label plus the
// course titles recommended for it. RecommendedSkills is reserved and
// always empty in this core.
type FieldPrediction struct {
	Field              Field
	RecommendedCourses []string
	RecommendedSkills  []string
}

// QualityScores bundles the two rubric outputs.
type QualityScores struct {
	ATSScore    int
	ResumeScore int
	Tips        []string
}

// Identity is optional caller-supplied tracking metadata. It never
// alters the analysis; it is only stamped onto the result.
type Identity struct {
	UserID   string `json:"user_id" validate:"required,min=1"`
	Filename string `json:"filename,omitempty"`
}

// Validate validates the Identity using the validator.
func (i *Identity) Validate() error {
	validate := validator.New()
	return validate.Struct(i)
}

// AnalysisResult is the aggregate output of one analysis call, shaped
// for the external JSON contract. The identity fields are present only
// when an Identity was supplied.
type AnalysisResult struct {
	Name               string         `json:"name"`
	Email              string         `json:"email"`
	MobileNumber       string         `json:"mobile_number"`
	Degree             string         `json:"degree"`
	NoOfPages          int            `json:"no_of_pages"`
	CandidateLevel     CandidateLevel `json:"candidate_level"`
	PredictedField     Field          `json:"predicted_field"`
	Skills             []string       `json:"skills"`
	RecommendedSkills  []string       `json:"recommended_skills"`
	RecommendedCourses []string       `json:"recommended_courses"`
	ResumeScore        int            `json:"resume_score"`
	Tips               []string       `json:"tips"`
	ATSScore           int            `json:"ats_score"`
	RawText            string         `json:"raw_text"`

	UserID           string `json:"user_id,omitempty"`
	AnalysisDate     string `json:"analysis_date,omitempty"`
	OriginalFilename string `json:"original_filename,omitempty"`
}

// Sentineled returns the contact fields with sentinels substituted for
// anything the extractor could not find.
func (c ContactInfo) Sentineled() ContactInfo {
	out := c
	if out.Name == "" {
		out.Name = NameNotFound
	}
	if out.Email == "" {
		out.Email = NotSpecified
	}
	if out.Phone == "" {
		out.Phone = NotSpecified
	}
	return out
}
