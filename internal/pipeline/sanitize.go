package pipeline

import (
	"regexp"
	"strings"
)

var (
	// Emphasis marker: any maximal run of '*'
	emphasisRun = regexp.MustCompile(`\*+`)

	// Heading marker: any '#'
	headingMark = regexp.MustCompile(`#`)
)

// SanitizeLine strips emphasis and heading markers from a plain line and trims
// the result. An empty return value means the line produces no paragraph.
func SanitizeLine(line string) string {
	line = emphasisRun.ReplaceAllString(line, "")
	line = headingMark.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}

// SanitizeCell strips emphasis markers from table cell text and trims it.
// Heading markers are kept: '#' in a cell is content ("#1", "C#").
func SanitizeCell(cell string) string {
	return strings.TrimSpace(emphasisRun.ReplaceAllString(cell, ""))
}

// SplitCells splits a table row on the cell delimiter and returns the
// sanitized, non-empty cells in order.
func SplitCells(line string) []string {
	parts := strings.Split(line, cellDelimiter)
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := SanitizeCell(p); c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}
