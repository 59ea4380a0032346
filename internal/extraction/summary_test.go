package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSummary_FromHeading(t *testing.T) {
	text := NormalizeText(`PERFIL PROFESIONAL
Profesional con más de diez años de experiencia en desarrollo de software,
especializada en sistemas distribuidos y liderazgo de equipos técnicos
en entornos internacionales exigentes.

EXPERIENCIA
Desarrolladora`)

	summary := ExtractSummary(text)
	assert.Contains(t, summary, "diez años de experiencia")
	assert.NotContains(t, summary, "Desarrolladora", "collection stops at the next heading")
}

func TestExtractSummary_HeadingTierRejectsShortText(t *testing.T) {
	text := NormalizeText(`PERFIL
Desarrolladora con experiencia.

EXPERIENCIA
Cocinera`)

	summary := ExtractSummary(text)
	assert.Equal(t, "", summary, "a labeled section under the word threshold yields nothing")
}

func TestExtractSummary_FromLeadingParagraphs(t *testing.T) {
	text := NormalizeText(`Ana García

Profesional del sector logístico con amplia experiencia en gestión de
inventarios, coordinación de equipos y optimización de rutas de reparto
por toda la península.`)

	summary := ExtractSummary(text)
	assert.Contains(t, summary, "sector logístico")
}

func TestExtractSummary_SkipsListParagraphs(t *testing.T) {
	text := NormalizeText(`- Python con cinco años de experiencia en proyectos reales y producción continua
- SQL avanzado con bases de datos relacionales y de columnas en varios proyectos grandes`)

	summary := ExtractSummary(text)
	assert.Equal(t, "", summary, "bulleted lines never become the summary")
}

func TestExtractSummary_SkipsAllCapsParagraphs(t *testing.T) {
	caps := strings.Repeat("PALABRAS EN MAYUSCULAS ", 8)
	summary := summaryFromLeadingParagraphs(NormalizeText(caps))
	assert.Equal(t, "", summary)
}

func TestExtractSummary_RejectsLongDigitRuns(t *testing.T) {
	text := NormalizeText(`Persona de contacto disponible en el teléfono 600123456789 para cualquier
consulta sobre mi candidatura en horario laboral de lunes a viernes incluido agosto`)

	summary := ExtractSummary(text)
	assert.Equal(t, "", summary, "contact noise with long digit runs is not a summary")
}

func TestExtractSummary_FallbackLongParagraph(t *testing.T) {
	filler := strings.Repeat("palabra ", 30)
	text := NormalizeText("uno dos\n\ntres cuatro\n\n" + filler)

	summary := ExtractSummary(text)
	assert.Equal(t, strings.TrimSpace(filler), summary)
}

func TestExtractSummary_Empty(t *testing.T) {
	assert.Equal(t, "", ExtractSummary(""))
}
