package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inclusionlab/cvmatch/internal/types"
)

func TestPositions_SkillRules(t *testing.T) {
	profile := types.CandidateProfile{Skills: []string{"Python", "SQL"}}

	positions := Positions(profile)
	assert.Equal(t, []string{"Desarrollador de Software", "Analista de Datos"}, positions)
}

func TestPositions_SkillsFoldedBeforeComparison(t *testing.T) {
	profile := types.CandidateProfile{Skills: []string{"Atención al cliente"}}

	positions := Positions(profile)
	assert.Contains(t, positions, "Asesor Comercial", "accented skill tags match accent-free triggers")
}

func TestPositions_ExperienceRules(t *testing.T) {
	profile := types.CandidateProfile{
		Experience: []types.ExperienceItem{{Title: "Mozo de Almacén", Years: 2}},
	}

	positions := Positions(profile)
	assert.Equal(t, []string{"Operador de Bodega"}, positions)
}

func TestPositions_SummaryRules(t *testing.T) {
	profile := types.CandidateProfile{
		Summary: "Amplia trayectoria en logística e inventario en grandes plantas.",
	}

	positions := Positions(profile)
	assert.Equal(t, []string{"Asistente de Logística"}, positions)
}

func TestPositions_Deduplicated(t *testing.T) {
	profile := types.CandidateProfile{
		Skills:  []string{"Python", "JavaScript"},
		Summary: "Desarrollo y gestion de proyectos de software.",
	}

	positions := Positions(profile)
	seen := make(map[string]int)
	for _, p := range positions {
		seen[p]++
	}
	for p, n := range seen {
		assert.Equal(t, 1, n, "position %q appears more than once", p)
	}
	assert.Contains(t, positions, "Coordinador de Proyectos")
}

func TestPositions_DefaultFallback(t *testing.T) {
	positions := Positions(types.CandidateProfile{})
	assert.Equal(t, defaultPositions, positions, "empty profiles still get entry-level suggestions")
}
