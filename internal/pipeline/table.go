package pipeline

import "github.com/alnah/go-report2docx/internal/document"

// scanState is the table buffer state.
type scanState int

const (
	scanning scanState = iota
	inTable
)

// tableBuffer accumulates the rows of the table currently being read.
// It is local to one Assemble call.
type tableBuffer struct {
	state scanState
	rows  [][]string
}

// add consumes a TableRow or SeparatorRow line.
func (b *tableBuffer) add(kind LineKind, line string) {
	b.state = inTable
	if kind == SeparatorRow {
		return
	}
	if cells := SplitCells(line); len(cells) > 0 {
		b.rows = append(b.rows, cells)
	}
}

// flush finalizes the buffered rows into a table and resets the buffer.
// ok is false when the buffer held no rows.
func (b *tableBuffer) flush(totalWidth float64, st *Stats) (t document.Table, ok bool) {
	rows := b.rows
	b.rows = nil
	b.state = scanning
	if len(rows) == 0 {
		return document.Table{}, false
	}

	cols := len(rows[0])
	for i, row := range rows {
		switch {
		case len(row) < cols:
			rows[i] = padRow(row, cols)
			st.PaddedRows++
		case len(row) > cols:
			rows[i] = row[:cols:cols]
			st.TruncatedRows++
		}
	}

	return document.Table{
		Rows:   rows,
		Widths: AllocateWidths(cols, totalWidth),
	}, true
}

// padRow extends row with empty cells up to n.
func padRow(row []string, n int) []string {
	padded := make([]string, n)
	copy(padded, row)
	return padded
}
