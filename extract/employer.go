package extract

import (
	"regexp"
	"strings"

	"github.com/ariwagen/ma-w2-efw2-generator/service/model"
)

var (
	employerNameRe = regexp.MustCompile(`(?i)Employer.?s name.*?\n([A-Z0-9 &.,'\-]+)`)
	employerEINRe  = regexp.MustCompile(`(?i)Employer identification number.*?\n(\d{2}-\d{7}|\d{9})`)

	// Box amounts sometimes leak onto the employer name line; strip a
	// trailing monetary run and anything after it.
	trailingAmountRe = regexp.MustCompile(`\s+\d[\d,]*\.\d{2}.*$`)
)

// extractEmployerInfo recovers employer name and EIN from the joined
// document text. Employer identity is document-global, not per-section.
// Name and EIN are independently optional; missing one never blocks the
// other.
func extractEmployerInfo(text string) (name, ein *string) {
	if line := firstMatch(employerNameRe, text); line != "" {
		name = optional(strings.TrimSpace(trailingAmountRe.ReplaceAllString(line, "")))
	}
	ein = optional(firstMatch(employerEINRe, text))
	return name, ein
}

// employerFields packages the employer pair for the result.
func employerFields(text string) model.Fields {
	name, ein := extractEmployerInfo(text)
	return model.Fields{EmployerName: name, EmployerEIN: ein}
}
