// Package vocab holds the fixed vocabularies used to normalize free-form CV
// text: job-title categories, education levels, skill and language keywords,
// and a fuzzy matcher for free-text tags. All dictionaries are immutable after
// package initialization and safe for concurrent readers.
package vocab

import (
	"regexp"
	"strings"
)

// TitleUncategorized is the sentinel category returned when a job title matches
// no known variant. Callers must distinguish it from a real category: entries
// carrying it are usually discarded rather than stored.
const TitleUncategorized = "Otro"

// TitleEntry maps one canonical job-title category to its surface-form variants.
type TitleEntry struct {
	Category string
	Variants []string
}

// JobTitles is the job-title dictionary. Order matters: the first category with
// a matching variant wins, so broader categories are declared after narrower ones.
var JobTitles = []TitleEntry{
	{"Desarrollador De Software", []string{
		"desarrollador", "desarrolladora", "programador", "programadora",
		"developer", "ingeniero de software", "ingeniera de software",
		"backend", "frontend", "full stack", "fullstack", "software",
	}},
	{"Analista De Datos", []string{
		"analista de datos", "data analyst", "data scientist",
		"cientifico de datos", "científico de datos", "business intelligence", "analista",
	}},
	{"Administrativo", []string{
		"administrativo", "administrativa", "auxiliar administrativo",
		"secretario", "secretaria", "oficinista", "recepcionista",
	}},
	{"Asesor Comercial", []string{
		"comercial", "ventas", "vendedor", "vendedora", "asesor comercial",
		"ejecutivo de ventas", "dependiente", "dependienta",
	}},
	{"Atención Al Cliente", []string{
		"atención al cliente", "atencion al cliente", "teleoperador",
		"teleoperadora", "call center", "soporte",
	}},
	{"Operario De Producción", []string{
		"operario", "operaria", "producción", "produccion", "línea de montaje",
		"linea de montaje", "fábrica", "fabrica", "manipulador", "manipuladora",
	}},
	{"Mozo De Almacén", []string{
		"mozo de almacén", "mozo de almacen", "almacén", "almacen",
		"carretillero", "carretillera", "reponedor", "reponedora", "logística", "logistica",
	}},
	{"Cocinero", []string{
		"cocinero", "cocinera", "ayudante de cocina", "chef", "camarero",
		"camarera", "hostelería", "hosteleria",
	}},
	{"Personal De Limpieza", []string{
		"limpieza", "limpiador", "limpiadora", "mantenimiento",
	}},
	{"Conductor", []string{
		"conductor", "conductora", "chófer", "chofer", "repartidor",
		"repartidora", "transportista",
	}},
	{"Vigilante De Seguridad", []string{
		"vigilante", "seguridad", "escolta",
	}},
	{"Auxiliar Contable", []string{
		"contable", "contabilidad", "auxiliar contable", "finanzas",
	}},
}

var titleVariantPatterns = buildVariantPatterns(titleVariantList())

func titleVariantList() []string {
	var all []string
	for _, entry := range JobTitles {
		all = append(all, entry.Variants...)
	}
	return all
}

// buildVariantPatterns precompiles a whole-word pattern per variant.
func buildVariantPatterns(variants []string) map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(variants))
	for _, v := range variants {
		if _, ok := patterns[v]; ok {
			continue
		}
		patterns[v] = regexp.MustCompile(`\b` + regexp.QuoteMeta(v) + `\b`)
	}
	return patterns
}

// NormalizeTitle maps a free-text job title to its canonical category. The
// second return value reports whether a real category matched; when it is
// false the returned category is TitleUncategorized.
func NormalizeTitle(title string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(title))
	if lower == "" {
		return TitleUncategorized, false
	}
	for _, entry := range JobTitles {
		if lower == strings.ToLower(entry.Category) {
			return entry.Category, true
		}
		for _, variant := range entry.Variants {
			if titleVariantPatterns[variant].MatchString(lower) {
				return entry.Category, true
			}
		}
	}
	return TitleUncategorized, false
}
