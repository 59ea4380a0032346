// Package types provides type definitions for structured data used throughout the cvmatch system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CandidateProfile represents the structured data extracted from a single CV document.
// Optional fields are absent when empty; extraction never fills them with placeholders.
// A profile is built once per document and treated as immutable afterwards: a profile
// corrected during human review is a new value that re-enters the pipeline as trusted
// input, bypassing re-extraction.
type CandidateProfile struct {
	ID         string           `json:"id" validate:"required"`
	Name       string           `json:"name,omitempty"`
	Email      string           `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string           `json:"phone,omitempty"`
	Skills     []string         `json:"skills,omitempty"`
	Experience []ExperienceItem `json:"experience,omitempty"`
	Education  []EducationItem  `json:"education,omitempty"`
	Languages  []LanguageItem   `json:"languages,omitempty"`
	Summary    string           `json:"summary,omitempty"`
	RawText    string           `json:"raw_text,omitempty"` // kept for audit only
}

// ExperienceItem represents a single work experience entry. Title always holds a
// canonical job-title category; entries whose title could not be categorized are
// discarded during extraction rather than stored with a meaningless label.
type ExperienceItem struct {
	Title       string `json:"title"`
	Years       int    `json:"years"` // derived from the date range, never negative
	Description string `json:"description,omitempty"`
}

// EducationItem represents an education entry mapped to a canonical level category.
type EducationItem struct {
	Level string `json:"level"`
	Year  int    `json:"year,omitempty"` // completion year, 0 when unknown
}

// LanguageItem pairs a language name with a proficiency level, both drawn from
// fixed vocabularies. A profile holds at most one entry per language name.
type LanguageItem struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// CurrentPosition returns the title of the most recent experience entry, or an
// empty string when the profile has no experience.
func (p *CandidateProfile) CurrentPosition() string {
	if len(p.Experience) == 0 {
		return ""
	}
	return p.Experience[0].Title
}
