package pipeline

// AllocateWidths splits total evenly across n columns.
// Widths do not depend on cell content, so tables of any column count fit the
// page without measuring text. Returns nil if n < 1.
func AllocateWidths(n int, total float64) []float64 {
	if n < 1 {
		return nil
	}
	w := total / float64(n)
	widths := make([]float64, n)
	for i := range widths {
		widths[i] = w
	}
	return widths
}
