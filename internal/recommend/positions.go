// Package recommend suggests position titles for a candidate from explicit
// skill, experience and summary rules. The recommendations feed the
// offer-matching engine: an offer whose title is on the recommended list earns
// the highest-weighted scoring rule.
package recommend

import (
	"strings"

	"github.com/inclusionlab/cvmatch/internal/types"
	"github.com/inclusionlab/cvmatch/internal/vocab"
)

// rule maps trigger keywords in one profile dimension to recommended titles.
type rule struct {
	triggers  []string
	positions []string
}

var skillRules = []rule{
	{[]string{"python", "javascript", "sql", "machine learning"},
		[]string{"Desarrollador de Software", "Analista de Datos"}},
	{[]string{"supervision de equipos", "control de calidad", "produccion"},
		[]string{"Supervisor de Producción", "Encargado de Operaciones"}},
	{[]string{"atencion al cliente", "ventas", "comunicacion"},
		[]string{"Asesor Comercial", "Ejecutivo de Atención al Cliente"}},
	{[]string{"contabilidad", "finanzas", "excel"},
		[]string{"Auxiliar Contable", "Asistente Administrativo"}},
}

var experienceRules = []rule{
	{[]string{"operario de linea", "operario de produccion"}, []string{"Operario de Fábrica"}},
	{[]string{"mozo de almacen"}, []string{"Operador de Bodega"}},
}

var summaryRules = []rule{
	{[]string{"logistica", "inventario"}, []string{"Asistente de Logística"}},
	{[]string{"gestion de proyectos"}, []string{"Coordinador de Proyectos"}},
}

// defaultPositions is the fallback when no rule fires, so a sparse profile
// still gets entry-level suggestions instead of an empty list.
var defaultPositions = []string{
	"Roles de entrada sin experiencia específica",
	"Aprendiz en diferentes áreas",
}

// Positions recommends position titles for the candidate. The result is
// deduplicated and keeps rule-declaration order, so repeated calls over the
// same profile are identical.
func Positions(profile types.CandidateProfile) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(positions []string) {
		for _, p := range positions {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}

	skills := foldAll(profile.Skills)
	for _, r := range skillRules {
		if anyEquals(skills, r.triggers) {
			add(r.positions)
		}
	}

	var expTitles []string
	for _, exp := range profile.Experience {
		expTitles = append(expTitles, vocab.Fold(exp.Title))
	}
	for _, r := range experienceRules {
		if anyEquals(expTitles, r.triggers) {
			add(r.positions)
		}
	}

	summary := vocab.Fold(profile.Summary)
	for _, r := range summaryRules {
		for _, trigger := range r.triggers {
			if strings.Contains(summary, trigger) {
				add(r.positions)
				break
			}
		}
	}

	if len(out) == 0 {
		add(defaultPositions)
	}
	return out
}

func foldAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, vocab.Fold(v))
	}
	return out
}

// anyEquals reports whether any candidate value equals any trigger.
func anyEquals(values, triggers []string) bool {
	for _, v := range values {
		for _, t := range triggers {
			if v == t {
				return true
			}
		}
	}
	return false
}
