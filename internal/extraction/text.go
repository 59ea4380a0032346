// Package extraction turns raw CV text into a structured CandidateProfile.
// Every extractor is a pure function over normalized text and fixed
// vocabularies: missing or malformed input degrades to an absent field, never
// to an error, so a badly formatted document still yields a reviewable profile.
package extraction

import (
	"regexp"
	"strings"
)

var innerSpaceRe = regexp.MustCompile(`[ \t\x{00A0}]+`)

// NormalizeText collapses runs of whitespace while preserving the line
// boundaries the section segmenter depends on. Runs of blank lines shrink to a
// single blank line so paragraph breaks survive. The function is idempotent:
// normalizing already-normalized text returns it unchanged.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(innerSpaceRe.ReplaceAllString(line, " "))
		if line == "" {
			// collapse consecutive blank lines
			if !blank && len(cleaned) > 0 {
				cleaned = append(cleaned, "")
			}
			blank = true
			continue
		}
		blank = false
		cleaned = append(cleaned, line)
	}

	return strings.TrimRight(strings.Join(cleaned, "\n"), "\n")
}

// paragraphs splits normalized text into paragraphs at blank lines. Lines of
// one paragraph are rejoined with single spaces.
func paragraphs(text string) []string {
	var out []string
	for _, block := range strings.Split(text, "\n\n") {
		p := strings.TrimSpace(strings.ReplaceAll(block, "\n", " "))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// wordCount counts whitespace-separated tokens.
func wordCount(s string) int {
	return len(strings.Fields(s))
}
