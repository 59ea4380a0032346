package vocab

import (
	"github.com/agnivade/levenshtein"
)

// DefaultFuzzyThreshold is the minimum similarity (0-100) for a fuzzy match to
// be accepted. The value is empirically chosen; callers may override it via
// NewFuzzyMatcher but should not infer a new one.
const DefaultFuzzyThreshold = 70

// LabelUnknown is the explicit label for tokens that match nothing in the
// vocabulary above the threshold.
const LabelUnknown = "Desconocido"

// FuzzyMatcher maps free-text tokens onto a fixed label vocabulary by best
// edit-similarity match. It is used for loose skill/qualification tags, not
// for job-title normalization, which is strictly dictionary-driven.
type FuzzyMatcher struct {
	labels    []string
	folded    []string
	threshold int
}

// NewFuzzyMatcher builds a matcher over the given labels. A non-positive
// threshold falls back to DefaultFuzzyThreshold.
func NewFuzzyMatcher(labels []string, threshold int) *FuzzyMatcher {
	if threshold <= 0 {
		threshold = DefaultFuzzyThreshold
	}
	m := &FuzzyMatcher{
		labels:    labels,
		folded:    make([]string, len(labels)),
		threshold: threshold,
	}
	for i, label := range labels {
		m.folded[i] = Fold(label)
	}
	return m
}

// Match returns the best-matching label for the token and whether the match
// cleared the threshold. Tokens below the threshold map to LabelUnknown.
// Ties resolve to the earliest label, so results are deterministic.
func (m *FuzzyMatcher) Match(token string) (string, bool) {
	folded := Fold(token)
	if folded == "" {
		return LabelUnknown, false
	}
	best := -1
	bestScore := 0
	for i, label := range m.folded {
		score := similarity(folded, label)
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best < 0 || bestScore < m.threshold {
		return LabelUnknown, false
	}
	return m.labels[best], true
}

// similarity computes a normalized edit similarity on a 0-100 scale.
func similarity(a, b string) int {
	if a == b {
		return 100
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	return (longest - dist) * 100 / longest
}
