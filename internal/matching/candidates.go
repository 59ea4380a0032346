package matching

import (
	"sort"
	"strings"

	"github.com/inclusionlab/cvmatch/internal/types"
	"github.com/inclusionlab/cvmatch/internal/vocab"
)

// CandidateWeights holds the points each rule contributes when ranking a
// candidate pool against one offer. Direct position experience outweighs
// everything; related experience and relevant skills count equally.
type CandidateWeights struct {
	DirectExperience   int
	RelatedExperience  int
	RelevantSkills     int
	CompatibleCategory int
}

// DefaultCandidateWeights are the standard candidate-ranking weights.
var DefaultCandidateWeights = CandidateWeights{
	DirectExperience:   40,
	RelatedExperience:  25,
	RelevantSkills:     25,
	CompatibleCategory: 10,
}

// DefaultCandidateLimit bounds how many ranked candidates are returned.
const DefaultCandidateLimit = 10

// Reason strings for the candidate-ranking direction.
const (
	ReasonDirectExperience      = "Experiencia directa en el puesto"
	ReasonRelatedExperienceFor  = "Experiencia relacionada"
	ReasonRelevantSkills        = "Habilidades relevantes"
	ReasonCategoryCompatibility = "Categoría compatible"
)

// MatchCandidates ranks a candidate pool against one offer, the symmetric
// direction of MatchOffers. Candidates scoring zero are excluded; the result
// is sorted by descending score with input order preserved on ties, truncated
// to limit (DefaultCandidateLimit when limit is not positive).
func (s *Scorer) MatchCandidates(offer types.Offer, pool []types.CandidateProfile, limit int) []types.CandidateMatch {
	if limit <= 0 {
		limit = DefaultCandidateLimit
	}
	weights := DefaultCandidateWeights

	offerTitle := vocab.Fold(offer.Title)
	offerDesc := vocab.Fold(offer.Description)
	offerCat := vocab.Fold(offer.Category)

	var results []types.CandidateMatch
	for _, candidate := range pool {
		expText := foldedExperienceText(candidate)
		score := 0
		var reasons []string

		if offerTitle != "" && strings.Contains(expText, offerTitle) {
			score += weights.DirectExperience
			reasons = append(reasons, ReasonDirectExperience)
		}
		if offerDesc != "" && textContainsAny(expText, strings.Fields(offerDesc)) {
			score += weights.RelatedExperience
			reasons = append(reasons, ReasonRelatedExperienceFor)
		}
		if offerDesc != "" && textContainsAny(offerDesc, foldedTokens(candidate.Skills)) {
			score += weights.RelevantSkills
			reasons = append(reasons, ReasonRelevantSkills)
		}
		if offerCat != "" && strings.Contains(expText, offerCat) {
			score += weights.CompatibleCategory
			reasons = append(reasons, ReasonCategoryCompatibility)
		}

		if score == 0 {
			continue
		}
		if score > maxScore {
			score = maxScore
		}
		results = append(results, types.CandidateMatch{
			CandidateID:     candidate.ID,
			Name:            candidate.Name,
			Email:           candidate.Email,
			Phone:           candidate.Phone,
			CurrentPosition: candidate.CurrentPosition(),
			Score:           score,
			Reasons:         reasons,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
