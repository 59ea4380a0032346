package vocab

// Languages is the fixed list of language names recognized in CV text,
// in lowercase as they appear in prose.
var Languages = []string{
	"español", "inglés", "francés", "alemán", "italiano", "portugués",
	"chino", "japonés",
}

// ProficiencyLevels is the fixed, ordered list of language proficiency levels.
// Detection tests levels in this order, so the first level mentioned alongside
// a language wins.
var ProficiencyLevels = []string{
	"nativo", "avanzado", "intermedio", "básico", "fluido",
}
