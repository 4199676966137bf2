package pipeline

import (
	"slices"
	"testing"
)

func TestSanitizeLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "bold", line: "**bold** text", want: "bold text"},
		{name: "italic", line: "*a* and *b*", want: "a and b"},
		{name: "long run", line: "***strong***", want: "strong"},
		{name: "heading", line: "# Title", want: "Title"},
		{name: "deep heading with bold", line: "### **식단 요약**", want: "식단 요약"},
		{name: "hash inside text", line: "Day #3", want: "Day 3"},
		{name: "only markers", line: "*** ###", want: ""},
		{name: "whitespace", line: "   \t ", want: ""},
		{name: "untouched", line: "[link](http://x)", want: "[link](http://x)"},
		{name: "code fence kept as text", line: "```go", want: "```go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SanitizeLine(tt.line); got != tt.want {
				t.Errorf("SanitizeLine(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestSanitizeCell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cell string
		want string
	}{
		{cell: " **월요일** ", want: "월요일"},
		{cell: "#1", want: "#1"},
		{cell: "**", want: ""},
		{cell: "", want: ""},
	}

	for _, tt := range tests {
		if got := SanitizeCell(tt.cell); got != tt.want {
			t.Errorf("SanitizeCell(%q) = %q, want %q", tt.cell, got, tt.want)
		}
	}
}

func TestSplitCells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "outer pipes", line: "|A|B|", want: []string{"A", "B"}},
		{name: "no outer pipes", line: "A | B", want: []string{"A", "B"}},
		{name: "empty cell dropped", line: "| A | | B |", want: []string{"A", "B"}},
		{name: "emphasis stripped", line: "| **A** | *b* |", want: []string{"A", "b"}},
		{name: "marker-only cells", line: "|**|*|", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SplitCells(tt.line)
			if !slices.Equal(got, tt.want) {
				t.Errorf("SplitCells(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
