package parser

import "strings"

// ExtractSections scans each page for the column-header marker and returns
// the lines following it, one section per matching page, in page order.
// Pages without the marker (cover, summary, rewards pages) contribute
// nothing.
func ExtractSections(pages [][]string) [][]string {
	var sections [][]string
	for _, lines := range pages {
		for i, line := range lines {
			if strings.Contains(strings.ToUpper(line), HeaderMarker) {
				sections = append(sections, lines[i+1:])
				break
			}
		}
	}
	return sections
}
