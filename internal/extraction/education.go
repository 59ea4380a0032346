package extraction

import (
	"strings"

	"github.com/inclusionlab/cvmatch/internal/types"
	"github.com/inclusionlab/cvmatch/internal/vocab"
)

// ExtractEducation builds education entries from the EDUCATION spans using the
// same three-line shape as experience: degree, institution, date expression.
// The degree must categorize to a real education level; entries that resolve
// only to the "No especificado" sentinel are discarded. When the section-aware
// pass recovers nothing, any line carrying both a recognizable level keyword
// and a year is accepted.
func ExtractEducation(sections []Section, fullText string) []types.EducationItem {
	var items []types.EducationItem
	for _, section := range sectionsByLabel(sections, SectionEducation) {
		items = append(items, educationFromSpan(section)...)
	}
	if len(items) == 0 {
		items = educationFallback(fullText)
	}
	return items
}

func educationFromSpan(section Section) []types.EducationItem {
	lines := nonEmpty(section.Lines)

	var items []types.EducationItem
	for i := 0; i+2 < len(lines); {
		degree, dates := lines[i], lines[i+2]
		if !looksLikeDate(dates) || looksLikeDate(degree) {
			i++
			continue
		}
		level, ok := vocab.CategorizeEducation(degree)
		if !ok {
			i += 3
			continue
		}
		items = append(items, types.EducationItem{
			Level: level,
			Year:  completionYear(dates),
		})
		i += 3
	}

	// Spans listed as "degree line, date line" pairs or single annotated lines
	// still carry level information worth keeping.
	if len(items) == 0 {
		for _, line := range lines {
			if level, ok := vocab.CategorizeEducation(line); ok {
				items = append(items, types.EducationItem{
					Level: level,
					Year:  completionYear(line),
				})
			}
		}
	}
	return items
}

// educationFallback scans the unsegmented document for lines that both
// categorize and carry a year.
func educationFallback(fullText string) []types.EducationItem {
	var items []types.EducationItem
	for _, line := range strings.Split(fullText, "\n") {
		if !yearRe.MatchString(line) {
			continue
		}
		level, ok := vocab.CategorizeEducation(line)
		if !ok {
			continue
		}
		items = append(items, types.EducationItem{
			Level: level,
			Year:  completionYear(line),
		})
	}
	return items
}

// completionYear resolves the end year of a date expression, or 0 when the
// expression carries no resolvable year.
func completionYear(expr string) int {
	_, end := ParseDateRange(expr)
	if end == nil {
		return 0
	}
	return *end
}
