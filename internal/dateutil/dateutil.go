// Package dateutil turns user-friendly date patterns ("MMDD", "YYYY-MM-DD")
// into Go time layouts.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultFileDateFormat stamps generated file names with month and day.
const DefaultFileDateFormat = "MMDD"

// dateTokens maps pattern tokens to Go layout components.
// Ordered by length descending for greedy matching; matching is case-sensitive
// so "MM" (month) and "mm" (minute) do not collide.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"M", "1"},
	{"D", "2"},
}

// Presets are named shortcuts for common patterns.
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"compact":  "YYYYMMDD",
	"monthday": "MMDD",
	"korean":   "YYYY[년] M[월] D[일]",
}

// Layout converts a pattern (or preset name) to a Go time layout.
// Text inside brackets is copied literally: "[Day] D" keeps "Day".
// Non-token characters outside brackets are preserved.
func Layout(format string) (string, error) {
	if preset, ok := Presets[strings.ToLower(format)]; ok {
		format = preset
	}
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	b.Grow(len(format) + 8)

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			b.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		n := matchToken(format[i:], &b)
		if n == 0 {
			b.WriteByte(format[i])
			n = 1
		}
		i += n
	}

	return b.String(), nil
}

// matchToken writes the layout for the token at the start of s and returns
// its length, or 0 if s does not start with a token.
func matchToken(s string, b *strings.Builder) int {
	for _, t := range dateTokens {
		if strings.HasPrefix(s, t.token) {
			b.WriteString(t.goFmt)
			return len(t.token)
		}
	}
	return 0
}

// Format renders t with a pattern or preset.
func Format(t time.Time, format string) (string, error) {
	layout, err := Layout(format)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}
