package extract

import (
	"regexp"
)

// A repeated employee caption is the only reliable boundary signal between
// employee blocks on a densely formatted form; no other layout cue
// survives text extraction.
var sectionMarkerRe = regexp.MustCompile(`(?i)Employee'?s name|Employee'?s SSN`)

// splitSections partitions a page's text into one segment per detected
// employee marker. With no markers the whole page is a single section.
// Each section runs from its marker to the next marker (or end of text);
// concatenating all sections in order reconstructs the page.
func splitSections(pageText string) []string {
	markers := sectionMarkerRe.FindAllStringIndex(pageText, -1)
	if len(markers) == 0 {
		return []string{pageText}
	}

	sections := make([]string, 0, len(markers))
	for i, marker := range markers {
		start := marker[0]
		if i == 0 {
			// Any preamble before the first caption belongs to the first
			// employee block; dropping it would break reconstruction.
			start = 0
		}
		end := len(pageText)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		sections = append(sections, pageText[start:end])
	}
	return sections
}
