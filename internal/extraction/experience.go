package extraction

import (
	"regexp"
	"strings"

	"github.com/inclusionlab/cvmatch/internal/types"
	"github.com/inclusionlab/cvmatch/internal/vocab"
)

// ExtractExperience builds work-history entries from the EXPERIENCE spans.
// Inside a span an entry is three consecutive non-empty lines: title,
// organization, date expression. Titles must normalize to a real category;
// uncategorizable entries are dropped rather than stored with the sentinel.
// When the section-aware pass recovers nothing, a looser whole-document
// pattern trades precision for recall.
func ExtractExperience(sections []Section, fullText string) []types.ExperienceItem {
	var items []types.ExperienceItem
	for _, section := range sectionsByLabel(sections, SectionExperience) {
		items = append(items, experienceFromSpan(section)...)
	}
	if len(items) == 0 {
		items = experienceFallback(fullText)
	}
	return items
}

// experienceFromSpan scans a span for title/organization/date triples.
func experienceFromSpan(section Section) []types.ExperienceItem {
	lines := nonEmpty(section.Lines)

	var items []types.ExperienceItem
	for i := 0; i+2 < len(lines); {
		title, org, dates := lines[i], lines[i+1], lines[i+2]
		if !looksLikeDate(dates) || looksLikeDate(title) {
			i++
			continue
		}
		category, ok := vocab.NormalizeTitle(title)
		if !ok {
			i += 3
			continue
		}
		items = append(items, types.ExperienceItem{
			Title:       category,
			Years:       YearsWorked(dates),
			Description: org,
		})
		i += 3
	}
	return items
}

// experienceFallbackRe matches the loose "<title> en <company> (<date or
// duration>)" form anywhere in the document.
var experienceFallbackRe = regexp.MustCompile(
	`(?i)([\pL][\pL ,.]{2,60}?)\s+en\s+([\pL][\pL\d ,.&-]{2,60}?)\s*\(([^()]{2,40})\)`)

// experienceFallback applies the whole-document pattern, with the same
// categorization rejection rule as the primary strategy.
func experienceFallback(fullText string) []types.ExperienceItem {
	var items []types.ExperienceItem
	for _, m := range experienceFallbackRe.FindAllStringSubmatch(fullText, -1) {
		title, org, dates := strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), m[3]
		category, ok := vocab.NormalizeTitle(title)
		if !ok {
			continue
		}
		items = append(items, types.ExperienceItem{
			Title:       category,
			Years:       YearsWorked(dates),
			Description: org,
		})
	}
	return items
}

// nonEmpty drops blank lines from a span.
func nonEmpty(lines []string) []string {
	var out []string
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}
