package extraction

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/inclusionlab/cvmatch/internal/types"
)

// NameInput bundles everything the name extractor may consult: the normalized
// text, the externally supplied NER entity spans, and the source file name
// used as a last-resort signal.
type NameInput struct {
	Text     string
	Entities []types.Entity
	Filename string
}

// nameStrategy is one stage of the fallback chain. It returns an empty string
// when the stage cannot produce a name.
type nameStrategy func(NameInput) string

// nameStrategies is the ordered fallback chain. The first stage that succeeds
// wins; later stages never override an earlier success.
var nameStrategies = []nameStrategy{
	nameFromLabeledField,
	nameFromFirstLine,
	nameFromEarlyPersonEntity,
	nameFromAnyPersonEntity,
	nameFromFilename,
}

// ExtractName resolves the candidate name through the strategy chain, or
// returns an empty string when every stage fails.
func ExtractName(input NameInput) string {
	for _, strategy := range nameStrategies {
		if name := strategy(input); name != "" {
			return name
		}
	}
	return ""
}

var nameLabelRe = regexp.MustCompile(`(?im)^\s*(?:nombre|name)\s*:\s*(.+)$`)

// nameFromLabeledField matches an explicit "Nombre:" style field.
func nameFromLabeledField(input NameInput) string {
	m := nameLabelRe.FindStringSubmatch(input.Text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// nameWordRe matches one capitalized name word, accented letters included.
var nameWordRe = regexp.MustCompile(`^[A-ZÁÉÍÓÚÑÜ][a-záéíóúñü]+\.?$`)

// nameConnectors are lowercase particles allowed inside a Spanish full name.
var nameConnectors = map[string]bool{"de": true, "del": true, "la": true, "los": true, "y": true}

// nameFromFirstLine accepts the first non-empty line when it reads as a
// capitalized two-to-five-word full name.
func nameFromFirstLine(input NameInput) string {
	line := ""
	for _, l := range strings.Split(input.Text, "\n") {
		if strings.TrimSpace(l) != "" {
			line = strings.TrimSpace(l)
			break
		}
	}
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 5 {
		return ""
	}
	capitalized := 0
	for _, w := range words {
		if nameConnectors[strings.ToLower(w)] {
			continue
		}
		if !nameWordRe.MatchString(w) {
			return ""
		}
		capitalized++
	}
	if capitalized < 2 {
		return ""
	}
	return line
}

// earlyEntityWindow bounds how far into the document a PERSON span may start
// and still count as the headline name.
const earlyEntityWindow = 500

// nameFromEarlyPersonEntity picks the first PERSON span near the top of the
// document that is shaped like a full name (2-4 tokens).
func nameFromEarlyPersonEntity(input NameInput) string {
	for _, ent := range input.Entities {
		if ent.Category != types.EntityPerson || ent.Offset > earlyEntityWindow {
			continue
		}
		tokens := strings.Fields(ent.Text)
		if len(tokens) >= 2 && len(tokens) <= 4 {
			return spanishTitle(ent.Text)
		}
	}
	return ""
}

// nameFromAnyPersonEntity falls back to the first PERSON span anywhere.
func nameFromAnyPersonEntity(input NameInput) string {
	for _, ent := range input.Entities {
		if ent.Category == types.EntityPerson && strings.TrimSpace(ent.Text) != "" {
			return spanishTitle(ent.Text)
		}
	}
	return ""
}

// filenameNoise lists tokens that file names carry but names never do.
var filenameNoise = map[string]bool{
	"cv": true, "curriculum": true, "currículum": true, "curriculo": true,
	"vitae": true, "resume": true, "resumen": true, "final": true,
	"copia": true, "copy": true, "actualizado": true, "nuevo": true, "new": true,
}

var versionTokenRe = regexp.MustCompile(`^v?\d+$`)

// nameFromFilename derives a name from the source file name, stripping the
// extension, known suffixes and version tokens, then title-casing the rest.
func nameFromFilename(input NameInput) string {
	base := strings.TrimSuffix(filepath.Base(input.Filename), filepath.Ext(input.Filename))
	base = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(base)

	var kept []string
	for _, token := range strings.Fields(base) {
		lower := strings.ToLower(token)
		if filenameNoise[lower] || versionTokenRe.MatchString(lower) {
			continue
		}
		kept = append(kept, lower)
	}
	if len(kept) == 0 || len(kept) > 4 {
		return ""
	}
	return spanishTitle(strings.Join(kept, " "))
}

var spanishTitleCaser = cases.Title(language.Spanish)

func spanishTitle(s string) string {
	return spanishTitleCaser.String(strings.TrimSpace(s))
}
