// Package matching scores candidate profiles against job offers with
// explicit, rule-based criteria. Every point awarded carries a fixed reason
// string so a score can always be explained; there is no semantic or vector
// similarity anywhere in this package.
package matching

import (
	"sort"
	"strings"

	"github.com/inclusionlab/cvmatch/internal/types"
	"github.com/inclusionlab/cvmatch/internal/vocab"
)

// Weights holds the points each offer-scoring rule contributes. The values
// are empirically chosen; override them through NewScorer rather than
// inventing new ones.
type Weights struct {
	RecommendedTitle   int
	RelatedExperience  int
	MatchingSkills     int
	CompatibleCategory int
}

// DefaultWeights are the standard offer-scoring weights.
var DefaultWeights = Weights{
	RecommendedTitle:   40,
	RelatedExperience:  30,
	MatchingSkills:     20,
	CompatibleCategory: 10,
}

// maxScore caps every match score.
const maxScore = 100

// Reason strings, one per scoring rule, appended in rule-evaluation order.
const (
	ReasonRecommendedTitle   = "Puesto recomendado para el candidato"
	ReasonRelatedExperience  = "Experiencia previa relacionada"
	ReasonMatchingSkills     = "Habilidades coincidentes"
	ReasonCompatibleCategory = "Categoría compatible"
)

// Scorer scores offers for a candidate. It is pure and side-effect free;
// a single Scorer can be shared across goroutines.
type Scorer struct {
	weights Weights
}

// NewScorer creates a Scorer with the default weights.
func NewScorer() *Scorer {
	return &Scorer{weights: DefaultWeights}
}

// NewScorerWithWeights creates a Scorer with custom weights.
func NewScorerWithWeights(w Weights) *Scorer {
	return &Scorer{weights: w}
}

// MatchOffers scores every offer against the candidate and the recommended
// position titles. Offers scoring zero are excluded. The result is sorted by
// descending score; offers with equal scores keep their input relative order,
// which callers rely on for reproducibility.
func (s *Scorer) MatchOffers(profile types.CandidateProfile, recommended []string, offers []types.Offer) []types.MatchResult {
	expText := foldedExperienceText(profile)
	skills := foldedTokens(profile.Skills)

	var results []types.MatchResult
	for _, offer := range offers {
		score := 0
		var reasons []string

		if containsString(recommended, offer.Title) {
			score += s.weights.RecommendedTitle
			reasons = append(reasons, ReasonRecommendedTitle)
		}
		if textContainsAny(expText, strings.Fields(vocab.Fold(offer.Title))) {
			score += s.weights.RelatedExperience
			reasons = append(reasons, ReasonRelatedExperience)
		}
		if offer.Description != "" && textContainsAny(vocab.Fold(offer.Description), skills) {
			score += s.weights.MatchingSkills
			reasons = append(reasons, ReasonMatchingSkills)
		}
		if cat := vocab.Fold(offer.Category); cat != "" && strings.Contains(expText, cat) {
			score += s.weights.CompatibleCategory
			reasons = append(reasons, ReasonCompatibleCategory)
		}

		if score == 0 {
			continue
		}
		if score > maxScore {
			score = maxScore
		}
		results = append(results, types.MatchResult{
			OfferID: offer.ID,
			Title:   offer.Title,
			Company: offer.Company,
			Score:   score,
			Reasons: reasons,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// foldedExperienceText concatenates the candidate's folded experience titles.
func foldedExperienceText(profile types.CandidateProfile) string {
	titles := make([]string, 0, len(profile.Experience))
	for _, exp := range profile.Experience {
		titles = append(titles, vocab.Fold(exp.Title))
	}
	return strings.Join(titles, " ")
}

// foldedTokens folds each input string for accent-insensitive comparison.
func foldedTokens(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if folded := vocab.Fold(v); folded != "" {
			out = append(out, folded)
		}
	}
	return out
}

// textContainsAny reports whether any keyword occurs in the folded text.
func textContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
