// Package classify assigns a professional domain to an extracted skill
// set and attaches course recommendations for the detected field.
package classify

import "github.com/jonathan/resume-analyzer/internal/types"

// Keyword lists per field. Scoring iterates fields in this declaration
// order and a later field only overtakes on a strictly greater score,
// so the order itself is part of the contract.
var (
	dsKeywords = []string{
		"machine learning", "deep learning",
		"tensorflow", "keras", "pytorch",
		"scikit-learn", "nlp", "data science",
	}

	webKeywords = []string{
		"react", "django", "node js", "react js", "php", "laravel", "magento",
		"wordpress", "javascript", "angular js", "c#", "asp.net", "html", "css",
		"web development", "frontend", "backend", "full stack",
	}

	androidKeywords = []string{
		"android", "android development", "flutter", "kotlin", "xml", "kivy",
		"jetpack", "android studio", "mobile development",
	}

	iosKeywords = []string{
		"ios", "ios development", "swift", "cocoa", "cocoa touch", "xcode",
		"objective-c", "ios app",
	}

	uiuxKeywords = []string{
		"ux", "ui", "figma", "adobe xd", "photoshop", "illustrator",
		"wireframes", "prototyping", "user research", "ui/ux", "design",
	}
)

// fieldEntry binds a field label to its keyword list and course catalog.
type fieldEntry struct {
	field    types.Field
	keywords []string
	courses  []string
}

// fields in fixed declaration order.
var fields = []fieldEntry{
	{types.FieldDataScience, dsKeywords, dsCourses},
	{types.FieldWebDev, webKeywords, webCourses},
	{types.FieldAndroid, androidKeywords, androidCourses},
	{types.FieldIOS, iosKeywords, iosCourses},
	{types.FieldUIUX, uiuxKeywords, uiuxCourses},
}

// AllKeywords returns the concatenation of every field's keyword list,
// in declaration order. The ATS keyword-match sub-score uses this as
// its keyword universe.
func AllKeywords() []string {
	var all []string
	for _, f := range fields {
		all = append(all, f.keywords...)
	}
	return all
}
