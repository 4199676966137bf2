package pipeline

import (
	"strings"
	"unicode"
)

// LineKind is the classification of a single report line.
type LineKind int

const (
	Plain LineKind = iota
	TableRow
	SeparatorRow
)

// String returns a readable name for logs and test failures.
func (k LineKind) String() string {
	switch k {
	case TableRow:
		return "TableRow"
	case SeparatorRow:
		return "SeparatorRow"
	default:
		return "Plain"
	}
}

// cellDelimiter separates table cells.
const cellDelimiter = "|"

// Classify tags a line as a table row, a header separator row, or plain text.
// A line with at least two delimiters encloses a cell and is a table row; a
// table row made only of '-', ':', '|' and whitespace is a separator row.
func Classify(line string) LineKind {
	if strings.Count(line, cellDelimiter) < 2 {
		return Plain
	}
	if isSeparator(line) {
		return SeparatorRow
	}
	return TableRow
}

// isSeparator reports whether every non-space rune of line is '-', ':' or '|'.
// Any Unicode space counts, including U+00A0 and the ideographic U+3000.
func isSeparator(line string) bool {
	for _, r := range line {
		if unicode.IsSpace(r) {
			continue
		}
		switch r {
		case '-', ':', '|':
		default:
			return false
		}
	}
	return true
}
