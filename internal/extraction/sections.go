package extraction

import "strings"

// SectionLabel identifies the kind of a segmented CV region.
type SectionLabel string

const (
	// SectionUnassigned covers text before the first recognized heading. It is
	// still eligible for name/contact/skill extraction but not for
	// experience or education parsing.
	SectionUnassigned SectionLabel = "UNASSIGNED"
	// SectionExperience covers work-history spans.
	SectionExperience SectionLabel = "EXPERIENCE"
	// SectionEducation covers education spans.
	SectionEducation SectionLabel = "EDUCATION"
	// SectionSummary covers professional-summary spans.
	SectionSummary SectionLabel = "SUMMARY"
	// SectionOther covers recognized headings with no dedicated extractor
	// (skills, languages, references, ...). They still close the previous span.
	SectionOther SectionLabel = "OTHER"
)

// Section is a contiguous labeled region of normalized text.
type Section struct {
	Label   SectionLabel
	Heading string // the heading line that opened the span, empty for UNASSIGNED
	Lines   []string
}

// Text returns the span content with original line boundaries.
func (s *Section) Text() string {
	return strings.Join(s.Lines, "\n")
}

// headingGroups maps heading keywords to section labels. Matching is
// case-insensitive and whole-line: a heading is a short line equal to one of
// these keywords once decorations are stripped.
var headingGroups = map[SectionLabel][]string{
	SectionExperience: {
		"experiencia laboral", "experiencia profesional", "experiencia",
		"historial laboral", "trayectoria profesional", "work experience",
		"experience", "employment history",
	},
	SectionEducation: {
		"educación", "educacion", "formación", "formacion",
		"formación académica", "formacion academica", "estudios", "education",
	},
	SectionSummary: {
		"perfil", "perfil profesional", "resumen", "resumen profesional",
		"sobre mí", "sobre mi", "extracto", "objetivo profesional", "summary",
		"professional summary", "about me",
	},
	SectionOther: {
		"habilidades", "competencias", "aptitudes", "skills", "idiomas",
		"lenguas", "languages", "datos personales", "contacto", "referencias",
		"otros datos", "información adicional", "informacion adicional",
		"cursos", "certificaciones",
	},
}

// maxHeadingLen bounds how long a line may be and still count as a heading.
const maxHeadingLen = 40

// headingLabel reports whether a line is a recognized section heading and, if
// so, which label it opens. Unrecognized headings are not headings at all here:
// they do not close the current span.
func headingLabel(line string) (SectionLabel, bool) {
	clean := strings.ToLower(strings.Trim(line, " \t:·•*-–—_"))
	if clean == "" || len(clean) > maxHeadingLen {
		return "", false
	}
	for _, label := range []SectionLabel{SectionExperience, SectionEducation, SectionSummary, SectionOther} {
		for _, keyword := range headingGroups[label] {
			if clean == keyword {
				return label, true
			}
		}
	}
	return "", false
}

// Segment splits normalized text into labeled spans. A recognized heading
// opens a new span that extends until the next recognized heading or the end
// of the text. Text before the first heading lands in an UNASSIGNED span.
func Segment(text string) []Section {
	lines := strings.Split(text, "\n")

	current := Section{Label: SectionUnassigned}
	var sections []Section

	flush := func() {
		if current.Heading != "" || len(trimBlank(current.Lines)) > 0 {
			current.Lines = trimBlank(current.Lines)
			sections = append(sections, current)
		}
	}

	for _, line := range lines {
		if label, ok := headingLabel(line); ok {
			flush()
			current = Section{Label: label, Heading: line}
			continue
		}
		current.Lines = append(current.Lines, line)
	}
	flush()

	return sections
}

// trimBlank removes leading and trailing blank lines from a span.
func trimBlank(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

// sectionsByLabel filters spans by label, preserving document order.
func sectionsByLabel(sections []Section, label SectionLabel) []Section {
	var out []Section
	for _, s := range sections {
		if s.Label == label {
			out = append(out, s)
		}
	}
	return out
}
