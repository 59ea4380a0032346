// Package interview generates preparation questions tailored to a candidate
// profile. Questions come from a fixed Spanish pool with slots filled from the
// profile; selection is pseudo-random but fully determined by the seed, so a
// stored seed reproduces the exact question set.
package interview

import (
	"fmt"
	"math/rand"

	"github.com/inclusionlab/cvmatch/internal/types"
)

// DefaultQuestionCount is the number of questions generated when the caller
// does not ask for a specific count.
const DefaultQuestionCount = 5

// Params carries everything question generation draws on.
type Params struct {
	Profile          types.CandidateProfile
	DevelopmentAreas []string
	Recommendations  []string
	Count            int
	Seed             int64
}

// Questions generates interview-preparation questions for the candidate.
func Questions(p Params) []string {
	count := p.Count
	if count <= 0 {
		count = DefaultQuestionCount
	}
	rng := rand.New(rand.NewSource(p.Seed))

	pool := []string{
		"¿Cuáles son tus objetivos profesionales a corto y largo plazo?",
		"Háblanos de tu experiencia previa que creas que es más relevante para un nuevo rol.",
		"¿Cómo manejas las situaciones de estrés o presión?",
		"¿Qué planes tienes para seguir aprendiendo y desarrollándote profesionalmente?",
	}
	if skill := pick(rng, p.Profile.Skills); skill != "" {
		pool = append(pool, fmt.Sprintf("Háblame de un momento en que usaste tu habilidad de %s.", skill))
	}
	area := pick(rng, p.DevelopmentAreas)
	if area == "" {
		area = "manejo del estrés"
	}
	pool = append(pool, fmt.Sprintf("¿Cómo manejas los desafíos en el trabajo, especialmente considerando un área como '%s'?", area))
	if role := pick(rng, p.Recommendations); role != "" {
		pool = append(pool, fmt.Sprintf("¿Qué te atrae del rol de %s y cómo crees que tus habilidades se aplicarían?", role))
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}

// pick selects one element pseudo-randomly, or returns "" for an empty slice.
func pick(rng *rand.Rand, values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[rng.Intn(len(values))]
}
