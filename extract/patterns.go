package extract

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// normalize collapses any whitespace run (including newlines) to a single
// space and trims the ends. Only used where line structure is irrelevant;
// the structural rules operate on the original line-preserving text.
func normalize(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// firstMatch returns the trimmed first capture group of the first match,
// or "" when the pattern does not match. Every field rule in this package
// is built on this primitive; "" means the field is absent, never an error.
func firstMatch(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// moneyToken matches a decimal amount with optional thousands separators
// and an optional two-digit fraction.
const moneyToken = `([0-9,]+(?:\.[0-9]{2})?)`

// extractMoney finds an amount near a literal label: the label, optional
// "$", then the numeric token. The token is returned as a literal string,
// never parsed, so the source formatting survives for human review.
func extractMoney(label, text string) string {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `\s*\$?` + moneyToken)
	return firstMatch(re, text)
}

// splitName breaks a free-text name candidate into first/middle/last on
// whitespace. One token is a first name; two are first and last; three or
// more put everything between the ends into the middle name. Known
// limitation: a two-part surname without a middle name will misparse.
func splitName(candidate string) (first, middle, last *string) {
	parts := strings.Fields(candidate)
	switch len(parts) {
	case 0:
		return nil, nil, nil
	case 1:
		return &parts[0], nil, nil
	case 2:
		return &parts[0], nil, &parts[1]
	default:
		mid := strings.Join(parts[1:len(parts)-1], " ")
		return &parts[0], &mid, &parts[len(parts)-1]
	}
}

// optional converts a ""-means-absent match result into a field pointer.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
