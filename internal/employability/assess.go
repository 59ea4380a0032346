// Package employability assesses how employable a candidate profile is. The
// statistical prediction model is an external collaborator behind the Model
// interface; this package owns only the rule-based development-area
// suggestions and the neutral fallback used when no model is wired.
package employability

import (
	"context"
	"math"

	"github.com/inclusionlab/cvmatch/internal/types"
)

// Model is the external employability-prediction model. Implementations may
// call out to a served model; this package never trains or loads one itself.
type Model interface {
	PredictScore(ctx context.Context, profile types.CandidateProfile) (float64, error)
}

// neutralScore is the fallback employability score when no model is available
// or a prediction fails. Neutral rather than zero: an absent model must not
// read as an unemployable candidate.
const neutralScore = 0.5

// Assessment is the employability result for one candidate.
type Assessment struct {
	Score            float64  `json:"employability_score"` // 0-1, rounded to 2 decimals
	DevelopmentAreas []string `json:"areas_for_development"`
}

// Development-area suggestions, emitted by the rules in Assess.
const (
	areaVocationalGuidance = "Necesita una fuerte orientación vocacional y formación básica."
	areaStrengthenSkills   = "Fortalecer habilidades específicas y buscar mentoría."
	areaGainExperience     = "Adquirir experiencia laboral a través de pasantías, voluntariado o prácticas."
	areaConsiderTraining   = "Considerar formación académica o cursos técnicos para mejorar el perfil."
	areaSoftSkills         = "Desarrollar habilidades blandas (comunicación, trabajo en equipo, liderazgo)."
	areaKeepDeveloping     = "Continuar el desarrollo de habilidades y exploración de nuevas oportunidades."
)

// coreSoftSkills are the soft skills whose absence triggers a suggestion.
// Comparison runs over fuzzy-standardized tags so close variants still count.
var coreSoftSkills = []string{"Comunicación", "Trabajo en equipo", "Liderazgo"}

// Assess produces the employability score and development areas for a
// profile. The score comes from the model when one is wired and clamps to
// [0,1]; a nil model or a failed prediction falls back to the neutral score.
func Assess(ctx context.Context, profile types.CandidateProfile, model Model) Assessment {
	score := neutralScore
	if model != nil {
		if predicted, err := model.PredictScore(ctx, profile); err == nil {
			score = math.Max(0, math.Min(1, predicted))
		}
	}

	var areas []string
	if score < 0.3 {
		areas = append(areas, areaVocationalGuidance)
	} else if score < 0.6 {
		areas = append(areas, areaStrengthenSkills)
	}
	if len(profile.Experience) == 0 {
		areas = append(areas, areaGainExperience)
	}
	if len(profile.Education) == 0 {
		areas = append(areas, areaConsiderTraining)
	}
	if !hasAnySoftSkill(profile.Skills) {
		areas = append(areas, areaSoftSkills)
	}
	if len(areas) == 0 {
		areas = append(areas, areaKeepDeveloping)
	}

	return Assessment{
		Score:            math.Round(score*100) / 100,
		DevelopmentAreas: areas,
	}
}

// hasAnySoftSkill reports whether the standardized skill tags include any of
// the core soft skills.
func hasAnySoftSkill(skills []string) bool {
	standardized := StandardizeQualities(skills)
	for _, tag := range standardized {
		for _, want := range coreSoftSkills {
			if tag == want {
				return true
			}
		}
	}
	return false
}
