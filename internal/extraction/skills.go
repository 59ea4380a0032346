package extraction

import (
	"regexp"
	"strings"
)

// skillPattern compiles a case-insensitive whole-word pattern for one
// vocabulary entry. Entries with non-word edges (like "C++" or "UX/UI") get a
// lookaround-free boundary built from explicit character classes.
func skillPattern(skill string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(strings.ToLower(skill))
	left, right := `\b`, `\b`
	if !startsWithWordChar(skill) {
		left = `(?:^|[^\w])`
	}
	if !endsWithWordChar(skill) {
		right = `(?:[^\w]|$)`
	}
	return regexp.MustCompile(`(?i)` + left + quoted + right)
}

func startsWithWordChar(s string) bool {
	if s == "" {
		return false
	}
	return isWordChar(rune(s[0]))
}

func endsWithWordChar(s string) bool {
	if s == "" {
		return false
	}
	return isWordChar(rune(s[len(s)-1]))
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// ExtractSkills matches the skill vocabulary against the text as whole words,
// case-insensitively, and returns the canonical skill names. The result is a
// deduplicated set in vocabulary order, so repeated runs over the same text
// yield identical slices regardless of how often a skill appears.
func ExtractSkills(text string, vocabulary []string) []string {
	lower := strings.ToLower(text)
	var found []string
	seen := make(map[string]bool)
	for _, skill := range vocabulary {
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		if skillPattern(skill).MatchString(lower) {
			found = append(found, skill)
			seen[key] = true
		}
	}
	return found
}
