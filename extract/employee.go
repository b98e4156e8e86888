package extract

import (
	"regexp"

	"github.com/ariwagen/ma-w2-efw2-generator/service/model"
)

// Options control the riskiest fallback rules. Both fallbacks are on by
// default to preserve the tool's best-effort reach; strict mode trades
// recall for precision.
type Options struct {
	// StrictSSN disables the bare-9-digit-run fallback, which will happily
	// mistake any 9-digit number for an SSN.
	StrictSSN bool
	// StrictName disables parsing the whole section text as a name when
	// the first-name caption is missing.
	StrictName bool
}

var (
	ssnLabeledRe = regexp.MustCompile(`(?i)Employee.?s social security number\s+(\d{3}-\d{2}-\d{4})`)
	ssnBareRe    = regexp.MustCompile(`\b(\d{9})\b`)

	nameLineRe = regexp.MustCompile(`(?i)Employee.?s first name.*?\n([^\n]+)`)
	// The generic name caption, tried when the first-name caption is
	// missing. \s+ crosses the newline, so a value on the caption's own
	// line or the next one both match.
	nameCaptionRe = regexp.MustCompile(`(?i)Employee.?s name\s+([^\n]+)`)
	// Empty W-2 boxes render as 0.00 runs that leak onto the name line.
	zeroTailRe = regexp.MustCompile(`\s+0\.00.*$`)

	// Anchor assumption: on this form layout the wages amount sits on the
	// line following the EIN caption. The wages rule reads that line; if
	// the layout ever changes, this anchor is the single point to edit.
	wagesLineRe = regexp.MustCompile(`(?i)Employer identification number.*?\n([^\n]+)`)

	decimalRe = regexp.MustCompile(`\d[\d,]*\.\d{2}`)

	// Boxes 16 and 17 share one value line; both figures are read from it
	// together or not at all.
	stateLineRe = regexp.MustCompile(`(?is)16 State wages.*?17 State income tax.*?\n([^\n]+)`)

	mapfmlRe = regexp.MustCompile(`(?i)MAPFML:\s*([0-9,]+(?:\.[0-9]{2})?)`)
)

// extractEmployee runs the field cascade over one section (or one
// single-employee page). Each rule is independent; a failed match leaves
// its field nil. Purely a function of its text input, so sections can be
// processed concurrently by independent callers.
func extractEmployee(text string, opts Options) model.Employee {
	var emp model.Employee

	emp.SSN = optional(firstMatch(ssnLabeledRe, text))
	if emp.SSN == nil && !opts.StrictSSN {
		emp.SSN = optional(firstMatch(ssnBareRe, text))
	}

	if nameLine := firstMatch(nameLineRe, text); nameLine != "" {
		emp.First, emp.Middle, emp.Last = splitName(zeroTailRe.ReplaceAllString(nameLine, ""))
	} else if caption := firstMatch(nameCaptionRe, text); caption != "" {
		emp.First, emp.Middle, emp.Last = splitName(caption)
	} else if !opts.StrictName {
		// Last resort: treat the whole section as a name candidate.
		emp.First, emp.Middle, emp.Last = splitName(text)
	}

	if wagesLine := firstMatch(wagesLineRe, text); wagesLine != "" {
		emp.Wages = optional(decimalRe.FindString(wagesLine))
	}
	if emp.Wages == nil {
		emp.Wages = optional(extractMoney("Wages, tips, other comp", normalize(text)))
	}

	emp.StateWages, emp.StateWithheld = extractStateWagesAndTax(text)
	emp.MAPFML = optional(firstMatch(mapfmlRe, text))

	return emp
}

// extractStateWagesAndTax reads boxes 16 and 17 from their shared value
// line, left to right. Fewer than two amounts on the line rejects both
// fields rather than guessing which figure is which.
func extractStateWagesAndTax(text string) (stateWages, stateWithheld *string) {
	line := firstMatch(stateLineRe, text)
	if line == "" {
		return nil, nil
	}
	nums := decimalRe.FindAllString(line, 2)
	if len(nums) < 2 {
		return nil, nil
	}
	return &nums[0], &nums[1]
}
