package employability

import "github.com/inclusionlab/cvmatch/internal/vocab"

// QualityLabels is the closed label set personal qualities are standardized
// onto before feeding the prediction model. Free-text tags map onto it by
// fuzzy similarity; anything below the threshold becomes the explicit unknown
// label rather than passing through verbatim.
var QualityLabels = []string{
	"Comunicación", "Liderazgo", "Trabajo en equipo", "Responsabilidad",
	"Puntualidad", "Adaptabilidad", "Resolución de problemas", "Organización",
	"Iniciativa", "Atención al cliente",
}

var qualityMatcher = vocab.NewFuzzyMatcher(QualityLabels, vocab.DefaultFuzzyThreshold)

// StandardizeQualities maps free-text quality/skill tags onto QualityLabels.
// Unmatched tags collapse into a single unknown entry. The result is
// deduplicated and deterministic for a given input set.
func StandardizeQualities(tags []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, tag := range tags {
		label, _ := qualityMatcher.Match(tag)
		if !seen[label] {
			seen[label] = true
			out = append(out, label)
		}
	}
	return out
}
