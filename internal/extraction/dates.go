package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// months lists Spanish month names and their common abbreviations, as they
// appear in CV date expressions.
var months = []string{
	"enero", "ene", "febrero", "feb", "marzo", "mar", "abril", "abr", "mayo",
	"may", "junio", "jun", "julio", "jul", "agosto", "ago", "septiembre",
	"sep", "setiembre", "octubre", "oct", "noviembre", "nov", "diciembre", "dic",
}

// presentMarkers are the literal tokens meaning "ongoing as of today".
var presentMarkers = []string{"presente", "actualidad", "hoy"}

var (
	monthsAlt = strings.Join(months, "|")

	// a single year-bearing point: "marzo 2020", "3/2020", "2020"
	pointPattern = `(?:` + monthsAlt + `)\.?\s+\d{4}|\d{1,2}/\d{4}|\d{4}`

	dateRangeRe   = regexp.MustCompile(`(?i)(` + pointPattern + `)\s*[-–—]\s*(` + pointPattern + `|presente|actualidad|hoy)`)
	yearRe        = regexp.MustCompile(`\b(\d{4})\b`)
	durationRe    = regexp.MustCompile(`(?i)\b(\d{1,2})\s+años?\b`)
	presentRe     = regexp.MustCompile(`(?i)\b(?:presente|actualidad|hoy)\b`)
	singlePointRe = regexp.MustCompile(`(?i)(?:` + monthsAlt + `)\.?\s+(\d{4})|(\d{1,2})/(\d{4})|\b(\d{4})\b`)
)

// ParseDateRange parses a free-text date expression into start and end years.
// Recognized forms are a range "A - B" (separators -, – or —) and a single
// point; each side may be a month name plus year, a numeric month/year, a bare
// year, or a present-tense marker resolving to the current calendar year.
// Unparseable input yields (nil, nil), never an error: callers must treat
// unresolved years as unknown, not as zero.
func ParseDateRange(expr string) (start, end *int) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	if expr == "" {
		return nil, nil
	}
	current := time.Now().Year()

	if m := dateRangeRe.FindStringSubmatch(expr); m != nil {
		start = extractYear(m[1], current)
		if isPresentMarker(m[2]) {
			y := current
			end = &y
		} else {
			end = extractYear(m[2], current)
		}
		return start, end
	}

	// No explicit separator: two years in one fragment still read as a range,
	// first year as start, second as end.
	if years := yearRe.FindAllString(expr, 2); len(years) == 2 {
		s, _ := strconv.Atoi(years[0])
		e, _ := strconv.Atoi(years[1])
		return &s, &e
	}

	if y := extractYear(expr, current); y != nil {
		return y, y
	}
	if presentRe.MatchString(expr) {
		y := current
		return &y, &y
	}
	return nil, nil
}

// YearsWorked derives a non-negative working-years figure from a date
// expression. Explicit durations ("3 años") win; otherwise the parsed range
// drives the result and an unresolved or single-point range counts as zero.
func YearsWorked(expr string) int {
	if m := durationRe.FindStringSubmatch(expr); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	start, end := ParseDateRange(expr)
	if start == nil || end == nil {
		return 0
	}
	if *end < *start {
		return 0
	}
	return *end - *start
}

// looksLikeDate reports whether the expression carries any year-bearing token
// or present-tense marker, i.e. whether ParseDateRange could resolve anything.
func looksLikeDate(expr string) bool {
	return singlePointRe.MatchString(expr) || presentRe.MatchString(expr)
}

// extractYear pulls the year out of a single date point, resolving present
// markers to the current year. Returns nil when no year is found.
func extractYear(point string, current int) *int {
	point = strings.ToLower(strings.TrimSpace(point))
	if isPresentMarker(point) {
		return &current
	}
	m := singlePointRe.FindStringSubmatch(point)
	if m == nil {
		if presentRe.MatchString(point) {
			return &current
		}
		return nil
	}
	for _, group := range []string{m[1], m[3], m[4]} {
		if group != "" {
			y, err := strconv.Atoi(group)
			if err != nil {
				return nil
			}
			return &y
		}
	}
	return nil
}

func isPresentMarker(s string) bool {
	s = strings.TrimSpace(s)
	for _, marker := range presentMarkers {
		if s == marker {
			return true
		}
	}
	return false
}
