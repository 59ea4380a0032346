package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inclusionlab/cvmatch/internal/types"
)

func devProfile() types.CandidateProfile {
	return types.CandidateProfile{
		ID:     "cand-1",
		Name:   "Ana García",
		Skills: []string{"Python", "SQL"},
		Experience: []types.ExperienceItem{
			{Title: "Desarrollador De Software", Years: 4, Description: "Acme Corp"},
		},
	}
}

func TestMatchOffers_AllRulesFire(t *testing.T) {
	offer := types.Offer{
		ID:          "offer-1",
		Title:       "Desarrollador De Software",
		Category:    "Desarrollador De Software",
		Description: "Buscamos perfil con Python y SQL",
	}

	scorer := NewScorer()
	results := scorer.MatchOffers(devProfile(), []string{"Desarrollador De Software"}, []types.Offer{offer})

	require.Len(t, results, 1)
	assert.Equal(t, 100, results[0].Score, "40+30+20+10 caps exactly at 100")
	assert.Equal(t, []string{
		ReasonRecommendedTitle,
		ReasonRelatedExperience,
		ReasonMatchingSkills,
		ReasonCompatibleCategory,
	}, results[0].Reasons, "reasons follow rule-evaluation order")
}

func TestMatchOffers_ZeroScoreExcluded(t *testing.T) {
	offer := types.Offer{ID: "offer-2", Title: "Piloto Aéreo", Category: "Aviación"}

	results := NewScorer().MatchOffers(devProfile(), nil, []types.Offer{offer})
	assert.Empty(t, results, "offers scoring zero never appear in the output")
}

func TestMatchOffers_RecommendedTitleRule(t *testing.T) {
	offer := types.Offer{ID: "offer-3", Title: "Analista De Datos"}

	results := NewScorer().MatchOffers(types.CandidateProfile{ID: "c"}, []string{"Analista De Datos"}, []types.Offer{offer})
	require.Len(t, results, 1)
	assert.Equal(t, DefaultWeights.RecommendedTitle, results[0].Score)
	assert.Equal(t, []string{ReasonRecommendedTitle}, results[0].Reasons)
}

func TestMatchOffers_SkillsRuleFoldsAccents(t *testing.T) {
	profile := types.CandidateProfile{ID: "c", Skills: []string{"Atención al cliente"}}
	offer := types.Offer{ID: "offer-4", Title: "Teleoperador", Description: "Se valora atencion al cliente"}

	results := NewScorer().MatchOffers(profile, nil, []types.Offer{offer})
	require.Len(t, results, 1)
	assert.Equal(t, []string{ReasonMatchingSkills}, results[0].Reasons)
}

func TestMatchOffers_SortedDescendingStable(t *testing.T) {
	profile := devProfile()
	offers := []types.Offer{
		{ID: "low-1", Title: "Tareas con Python", Description: "Python"},
		{ID: "high", Title: "Desarrollador De Software"},
		{ID: "low-2", Title: "Más Python", Description: "Python"},
	}

	results := NewScorer().MatchOffers(profile, []string{"Desarrollador De Software"}, offers)
	require.Len(t, results, 3)
	assert.Equal(t, "high", results[0].OfferID)
	assert.Equal(t, "low-1", results[1].OfferID, "equal scores keep input order")
	assert.Equal(t, "low-2", results[2].OfferID)
}

func TestMatchOffers_CustomWeights(t *testing.T) {
	scorer := NewScorerWithWeights(Weights{RecommendedTitle: 5})
	offer := types.Offer{ID: "offer-5", Title: "Cocinero"}

	results := scorer.MatchOffers(types.CandidateProfile{ID: "c"}, []string{"Cocinero"}, []types.Offer{offer})
	require.Len(t, results, 1)
	assert.Equal(t, 5, results[0].Score)
}

func TestMatchOffers_NoOffers(t *testing.T) {
	assert.Empty(t, NewScorer().MatchOffers(devProfile(), nil, nil))
}
