package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inclusionlab/cvmatch/internal/types"
)

func TestPrintProfile_IncludesFields(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintProfile(&types.CandidateProfile{
		Name:   "Ana García",
		Email:  "ana@example.com",
		Skills: []string{"Python", "SQL"},
		Languages: []types.LanguageItem{
			{Name: "Inglés", Level: "Avanzado"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Ana García")
	assert.Contains(t, out, "ana@example.com")
	assert.Contains(t, out, "Python")
	assert.Contains(t, out, "Inglés: Avanzado")
}

func TestPrintProfile_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(nil)
	assert.Empty(t, buf.String())
}

func TestPrintMatches_ShowsTopEntries(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintMatches([]types.MatchResult{
		{Title: "Cocinero", Score: 70, Reasons: []string{"Experiencia previa relacionada"}},
	})

	out := buf.String()
	assert.Contains(t, out, "Cocinero")
	assert.Contains(t, out, "70")
}

func TestPrintMatches_EmptyIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatches(nil)
	assert.Empty(t, buf.String())
}
