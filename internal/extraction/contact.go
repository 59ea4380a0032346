package extraction

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// ExtractEmail returns the first email address in the text, or an empty
// string. Absence is not an error.
func ExtractEmail(text string) string {
	return emailRe.FindString(text)
}

var (
	phoneLabelRe   = regexp.MustCompile(`(?im)^\s*tel[eé]fono\s*:?\s*([+(]?[\d][\d\s().\-/]{5,})$`)
	phoneGenericRe = regexp.MustCompile(`(\+?\d{1,4}[-.\s]?)?\(?\d{2,}\)?[-.\s]?\d{3,4}[-.\s]?\d{4}`)
)

// minPhoneDigits is the minimum digit count for a match to count as a phone.
const minPhoneDigits = 7

// ExtractPhone finds a phone number, preferring an explicit "Teléfono:"
// labeled field over a generic digit-grouping pattern. The result keeps only
// digits plus a leading international "+" prefix.
func ExtractPhone(text string) string {
	if m := phoneLabelRe.FindStringSubmatch(text); m != nil {
		if phone := normalizePhone(m[1]); phone != "" {
			return phone
		}
	}
	if m := phoneGenericRe.FindString(text); m != "" {
		return normalizePhone(m)
	}
	return ""
}

// normalizePhone strips everything but digits, preserving one leading "+".
func normalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	var b strings.Builder
	for i, r := range raw {
		if r == '+' && i == 0 {
			b.WriteRune(r)
			continue
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	normalized := b.String()
	digits := strings.TrimPrefix(normalized, "+")
	if len(digits) < minPhoneDigits {
		return ""
	}
	return normalized
}
