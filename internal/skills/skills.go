// Package skills extracts a deduplicated skill set from resume text
// using a fixed vocabulary.
package skills

import (
	"sort"
	"strings"
)

// vocabulary is the fixed set of recognized skill terms, spanning
// languages, frameworks, data stores and tooling. Matching is
// case-insensitive substring containment over the full text.
var vocabulary = []string{
	"python", "java", "c++", "c#", "javascript", "react", "node",
	"html", "css", "mysql", "mongodb", "spring", "spring boot",
	"php", "git", "github", "aws", "api", "rest", "dsa", "algorithms",
}

// Extract returns the skills from the vocabulary that appear in the
// text, capitalized and deduplicated. The result is sorted so output
// order is deterministic.
func Extract(text string) []string {
	lower := strings.ToLower(text)

	seen := make(map[string]struct{})
	found := make([]string, 0, len(vocabulary))
	for _, skill := range vocabulary {
		if !strings.Contains(lower, skill) {
			continue
		}
		display := capitalize(skill)
		if _, dup := seen[display]; dup {
			continue
		}
		seen[display] = struct{}{}
		found = append(found, display)
	}

	sort.Strings(found)
	return found
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
