package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inclusionlab/cvmatch/internal/types"
	"github.com/inclusionlab/cvmatch/internal/vocab"
)

func TestExtractLanguages_NameThenLevel(t *testing.T) {
	items := ExtractLanguages("Inglés avanzado", vocab.Languages, vocab.ProficiencyLevels)
	require.Len(t, items, 1)
	assert.Equal(t, types.LanguageItem{Name: "Inglés", Level: "Avanzado"}, items[0])
}

func TestExtractLanguages_LevelThenName(t *testing.T) {
	items := ExtractLanguages("Nivel intermedio de francés", vocab.Languages, vocab.ProficiencyLevels)
	require.Len(t, items, 1)
	assert.Equal(t, types.LanguageItem{Name: "Francés", Level: "Intermedio"}, items[0])
}

func TestExtractLanguages_OneEntryPerLanguage(t *testing.T) {
	// Both levels appear on the line; the first level in declaration order wins.
	items := ExtractLanguages("Inglés avanzado, antes intermedio", vocab.Languages, vocab.ProficiencyLevels)
	require.Len(t, items, 1)
	assert.Equal(t, "Avanzado", items[0].Level)
}

func TestExtractLanguages_MultipleLanguages(t *testing.T) {
	text := "Idiomas:\nEspañol nativo\nInglés intermedio"
	items := ExtractLanguages(text, vocab.Languages, vocab.ProficiencyLevels)
	require.Len(t, items, 2)
	assert.Equal(t, "Español", items[0].Name)
	assert.Equal(t, "Nativo", items[0].Level)
	assert.Equal(t, "Inglés", items[1].Name)
	assert.Equal(t, "Intermedio", items[1].Level)
}

func TestExtractLanguages_PairMustShareLine(t *testing.T) {
	items := ExtractLanguages("Inglés\navanzado", vocab.Languages, vocab.ProficiencyLevels)
	assert.Empty(t, items, "name and level on different lines do not pair")
}

func TestExtractLanguages_NoMatches(t *testing.T) {
	assert.Empty(t, ExtractLanguages("sin idiomas declarados", vocab.Languages, vocab.ProficiencyLevels))
}
