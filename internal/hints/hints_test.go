package hints

// Notes:
// - ForMissingAPIKey tests cannot use t.Parallel() because they use t.Setenv().

import (
	"strings"
	"testing"
)

func TestForMissingAPIKey_Default(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	hint := ForMissingAPIKey("GEMINI_API_KEY")

	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("expected hint prefix, got %q", hint)
	}
	if !strings.Contains(hint, "export GEMINI_API_KEY=") {
		t.Errorf("expected export suggestion, got %q", hint)
	}
	if strings.Contains(hint, "apiKeyEnv") {
		t.Errorf("unexpected config suggestion, got %q", hint)
	}
}

func TestForMissingAPIKey_CustomVarWithDefaultSet(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "secret")

	hint := ForMissingAPIKey("CLINIC_KEY")

	if !strings.Contains(hint, "export CLINIC_KEY=") {
		t.Errorf("expected custom export suggestion, got %q", hint)
	}
	if !strings.Contains(hint, "generation.apiKeyEnv") {
		t.Errorf("expected config suggestion, got %q", hint)
	}
	if strings.Count(hint, "hint:") != 1 {
		t.Errorf("hints should be joined on one line, got %q", hint)
	}
}

func TestForTimeout(t *testing.T) {
	t.Parallel()

	hint := ForTimeout()
	if !strings.Contains(hint, "--timeout") {
		t.Errorf("expected --timeout mention, got %q", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		searched []string
		want     string
		notWant  string
	}{
		{
			name:     "suggests user config path",
			searched: []string{"clinic.yaml", "/home/u/.config/go-report2docx/clinic.yaml"},
			want:     "or create /home/u/.config/go-report2docx/clinic.yaml",
		},
		{
			name:     "no user path",
			searched: []string{"clinic.yaml"},
			want:     "--config",
			notWant:  "or create",
		},
		{
			name: "nil paths",
			want: "--config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ForConfigNotFound(tt.searched)
			if !strings.Contains(got, tt.want) {
				t.Errorf("ForConfigNotFound() = %q, want substring %q", got, tt.want)
			}
			if tt.notWant != "" && strings.Contains(got, tt.notWant) {
				t.Errorf("ForConfigNotFound() = %q, should not contain %q", got, tt.notWant)
			}
		})
	}
}

func TestForOutputDirectory(t *testing.T) {
	t.Parallel()

	if got := ForOutputDirectory(); !strings.Contains(got, "writable") {
		t.Errorf("ForOutputDirectory() = %q", got)
	}
}

func TestForCondition(t *testing.T) {
	t.Parallel()

	if got := ForCondition(nil); got != "" {
		t.Errorf("ForCondition(nil) = %q, want empty", got)
	}

	got := ForCondition([]string{"고혈압", "통풍"})
	if !strings.Contains(got, "available: 고혈압, 통풍") {
		t.Errorf("ForCondition() = %q", got)
	}
}

func TestForEmptyReport(t *testing.T) {
	t.Parallel()

	if got := ForEmptyReport(); !strings.Contains(got, "only the title") {
		t.Errorf("ForEmptyReport() = %q", got)
	}
}

func TestFormatHints(t *testing.T) {
	t.Parallel()

	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
	if got := formatHints([]string{"a", "b"}); got != "\n  hint: a; b" {
		t.Errorf("formatHints() = %q", got)
	}
	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
}
