package vocab

import "strings"

// EducationUnspecified is the sentinel returned when no education-level variant
// matches. It is distinct from the lowest real tier ("Sin formación específica"):
// unspecified means the text said nothing recognizable, not that the candidate
// has no formal education.
const EducationUnspecified = "No especificado"

// EducationEntry maps one canonical education-level category to its keywords.
type EducationEntry struct {
	Category string
	Keywords []string
}

// EducationLevels lists the education tiers from most to least credentialed.
// The order is the tie-break: a text mentioning both "curso" and "ingeniería"
// categorizes as Universitaria because the higher tier is checked first.
var EducationLevels = []EducationEntry{
	{"Universitaria", []string{
		"grado", "licenciatura", "ingeniería", "ingenieria", "máster", "doctorado",
		"universidad", "universitario", "carrera", "diplomatura", "licenciado",
		"ingeniero", "master", "facultad", "superior", "abogado", "diploma",
	}},
	{"Formación Profesional", []string{
		"fp", "formación profesional", "formacion profesional", "ciclo formativo",
		"grado superior", "grado medio", "tecnico", "técnico superior",
		"técnico medio", "especialista", "oficial",
	}},
	{"Bachillerato", []string{
		"bachillerato", "bac", "preuniversitario",
	}},
	{"ESO/Secundaria", []string{
		"eso", "educación secundaria", "secundaria obligatoria", "e.s.o.",
		"graduado escolar",
	}},
	{"Curso/Certificación", []string{
		"curso", "certificación", "certificacion", "seminario", "taller",
		"formación", "formacion", "prl", "postgrado", "bootcamp", "mooc",
		"programa", "carretillero",
	}},
	{"Sin formación específica", []string{
		"sin estudios", "básico", "basico", "primaria",
	}},
}

var educationKeywordPatterns = buildVariantPatterns(educationKeywordList())

func educationKeywordList() []string {
	var all []string
	for _, entry := range EducationLevels {
		all = append(all, entry.Keywords...)
	}
	return all
}

// CategorizeEducation maps a free-text degree or studies description to a
// canonical education level. The second return value reports whether any tier
// matched; when it is false the returned category is EducationUnspecified.
func CategorizeEducation(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, entry := range EducationLevels {
		for _, keyword := range entry.Keywords {
			if educationKeywordPatterns[keyword].MatchString(lower) {
				return entry.Category, true
			}
		}
	}
	return EducationUnspecified, false
}
