package contact

import (
	"regexp"
	"strings"
	"unicode"
)

// emailLocalRe splits the local part of an email address into two
// pseudo-word groups used as a last-resort name guess.
var emailLocalRe = regexp.MustCompile(`(?i)([a-z]{3,})([a-z]+)[0-9]*@`)

// nameStrategy is one extractor in the ordered fallback chain. It
// returns an empty string when it cannot produce a name.
type nameStrategy func(text string) string

// nameStrategies are evaluated in priority order; the first non-empty
// result wins.
var nameStrategies = []nameStrategy{
	nameFromUppercaseLine,
	nameFromCapitalizedLine,
	nameFromEmailLocalPart,
}

// ExtractName runs the strategy chain over the text. Returns an empty
// string when every strategy fails.
func ExtractName(text string) string {
	for _, strategy := range nameStrategies {
		if name := strategy(text); name != "" {
			return name
		}
	}
	return ""
}

// nameFromUppercaseLine matches fully upper-case name lines, the common
// header style of modern resumes, and normalizes them to title case.
func nameFromUppercaseLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		clean := strings.TrimSpace(line)
		length := len([]rune(clean))
		if length <= 5 || length >= 40 {
			continue
		}
		if !isAlphabetic(strings.ReplaceAll(clean, " ", "")) {
			continue
		}
		if !isUpper(clean) {
			continue
		}
		words := len(strings.Fields(clean))
		if words < 2 || words > 4 {
			continue
		}
		return titleCase(clean)
	}
	return ""
}

// nameFromCapitalizedLine matches lines of 2-4 tokens where every
// alphabetic token starts with an upper-case letter. The line is
// returned verbatim, stripped but not re-cased.
func nameFromCapitalizedLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		parts := strings.Fields(strings.TrimSpace(line))
		if len(parts) < 2 || len(parts) > 4 {
			continue
		}
		ok := true
		for _, p := range parts {
			if !isAlphabetic(p) {
				continue
			}
			first := []rune(p)[0]
			if !unicode.IsUpper(first) {
				ok = false
				break
			}
		}
		if ok {
			return strings.TrimSpace(line)
		}
	}
	return ""
}

// nameFromEmailLocalPart derives a name guess from the local part of
// the first email-like pattern in the text.
func nameFromEmailLocalPart(text string) string {
	m := emailLocalRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return titleCase(m[1] + " " + m[2])
}

// isAlphabetic reports whether s is non-empty and consists only of
// letters.
func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// isUpper reports whether s contains at least one cased letter and no
// lower-case letters.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// titleCase capitalizes the first letter of each word and lowercases
// the rest.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
