package extraction

import (
	"regexp"
	"strings"
)

// Minimum word counts per summary tier. The heading-anchored tier demands the
// most because a labeled summary section should be substantial; the final
// fallback demands more than the positional scan to compensate for having no
// positional signal at all.
const (
	headingSummaryMinWords    = 20
	positionalSummaryMinWords = 15
	fallbackSummaryMinWords   = 25
	positionalParagraphLimit  = 10
)

// summaryStrategy is one tier of the summary search; it returns an empty
// string when the tier yields nothing.
type summaryStrategy func(text string) string

var summaryStrategies = []summaryStrategy{
	summaryFromHeading,
	summaryFromLeadingParagraphs,
	summaryFromAnyLongParagraph,
}

// ExtractSummary locates the professional-summary paragraph. Tiers are tried
// in order and each is only attempted when the previous one yields nothing:
// heading-anchored collection, a scan of the leading paragraphs, then the
// first sufficiently long paragraph anywhere.
func ExtractSummary(text string) string {
	for _, strategy := range summaryStrategies {
		if summary := strategy(text); summary != "" {
			return summary
		}
	}
	return ""
}

// summaryFromHeading collects paragraphs after a summary heading until the
// next recognized heading or a short/list-like line.
func summaryFromHeading(text string) string {
	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if label, ok := headingLabel(line); ok && label == SectionSummary {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return ""
	}

	var collected []string
	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(collected) > 0 {
				break
			}
			continue
		}
		if _, ok := headingLabel(trimmed); ok {
			break
		}
		if isListLike(trimmed) || wordCount(trimmed) <= 3 {
			break
		}
		collected = append(collected, trimmed)
	}

	candidate := strings.Join(collected, " ")
	if wordCount(candidate) < headingSummaryMinWords || !acceptableSummary(candidate) {
		return ""
	}
	return candidate
}

// summaryFromLeadingParagraphs scans the first paragraphs of the document for
// the first long, prose-like one, stopping early at a recognized heading.
func summaryFromLeadingParagraphs(text string) string {
	paras := paragraphs(text)
	if len(paras) > positionalParagraphLimit {
		paras = paras[:positionalParagraphLimit]
	}
	for _, p := range paras {
		if _, ok := headingLabel(p); ok {
			break
		}
		if wordCount(p) <= positionalSummaryMinWords {
			continue
		}
		if isListLike(p) || isAllCaps(p) || !acceptableSummary(p) {
			continue
		}
		return p
	}
	return ""
}

// summaryFromAnyLongParagraph is the final fallback: the first paragraph
// anywhere exceeding the fallback threshold that is not list-like.
func summaryFromAnyLongParagraph(text string) string {
	for _, p := range paragraphs(text) {
		if wordCount(p) > fallbackSummaryMinWords && !isListLike(p) && acceptableSummary(p) {
			return p
		}
	}
	return ""
}

var (
	listMarkerRe = regexp.MustCompile(`^\s*(?:[-*•·]|\d+[.)])\s+`)
	digitRunRe   = regexp.MustCompile(`\d{7,}`)
)

// isListLike reports whether text starts with a bullet or enumeration marker.
func isListLike(s string) bool {
	return listMarkerRe.MatchString(s)
}

// isAllCaps reports whether a paragraph has no lowercase letters at all.
func isAllCaps(s string) bool {
	return s == strings.ToUpper(s) && s != strings.ToLower(s)
}

// acceptableSummary rejects candidates that are really section headings or
// contact noise: a bare heading keyword, or text dominated by long digit runs.
func acceptableSummary(s string) bool {
	if s == "" {
		return false
	}
	if _, ok := headingLabel(s); ok {
		return false
	}
	return !digitRunRe.MatchString(s)
}
