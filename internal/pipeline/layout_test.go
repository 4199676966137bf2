package pipeline

import (
	"math"
	"testing"
)

func TestAllocateWidths(t *testing.T) {
	t.Parallel()

	const total = 7.0

	for n := 1; n <= 8; n++ {
		widths := AllocateWidths(n, total)
		if len(widths) != n {
			t.Fatalf("AllocateWidths(%d) returned %d widths", n, len(widths))
		}
		var sum float64
		for i, w := range widths {
			if w != widths[0] {
				t.Errorf("n=%d: widths[%d] = %v, want %v", n, i, w, widths[0])
			}
			sum += w
		}
		if math.Abs(sum-total) > 1e-9 {
			t.Errorf("n=%d: sum = %v, want %v", n, sum, total)
		}
	}
}

func TestAllocateWidths_NoColumns(t *testing.T) {
	t.Parallel()

	if got := AllocateWidths(0, 7); got != nil {
		t.Errorf("AllocateWidths(0) = %v, want nil", got)
	}
	if got := AllocateWidths(-1, 7); got != nil {
		t.Errorf("AllocateWidths(-1) = %v, want nil", got)
	}
}
