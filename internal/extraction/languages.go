package extraction

import (
	"regexp"
	"strings"

	"github.com/inclusionlab/cvmatch/internal/types"
)

// languagePairPattern matches "language ... level" on one line, in the order
// given. Both orderings are tested because CVs write either "Inglés avanzado"
// or "Nivel avanzado de inglés".
func languagePairPattern(first, second string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(first) + `\b[^\n]*\b` + regexp.QuoteMeta(second) + `\b`)
}

// ExtractLanguages detects language/proficiency pairs from the fixed
// cross-product of names and levels. Each language contributes at most one
// entry: the first level that matches, in level-declaration order, wins.
func ExtractLanguages(text string, names, levels []string) []types.LanguageItem {
	var items []types.LanguageItem
	for _, name := range names {
		for _, level := range levels {
			if languagePairPattern(name, level).MatchString(text) ||
				languagePairPattern(level, name).MatchString(text) {
				items = append(items, types.LanguageItem{
					Name:  capitalizeFirst(name),
					Level: capitalizeFirst(level),
				})
				break
			}
		}
	}
	return items
}

// capitalizeFirst uppercases the first rune of a lowercase vocabulary word.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
