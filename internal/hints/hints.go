// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"
)

// ForMissingAPIKey returns hints when the generation API key is not set.
// envVar is the variable the configuration points at.
func ForMissingAPIKey(envVar string) string {
	var hints []string
	hints = append(hints, "export "+envVar+"=<your key>")
	if envVar != "GEMINI_API_KEY" && os.Getenv("GEMINI_API_KEY") != "" {
		hints = append(hints, "GEMINI_API_KEY is set; remove generation.apiKeyEnv from config to use it")
	}
	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("long meal plans take time, use --timeout flag")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-report2docx/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-report2docx") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForCondition returns hints for an unknown medical condition.
func ForCondition(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForEmptyReport returns a hint when an input report has no content.
func ForEmptyReport() string {
	return format("the document will contain only the title; check the input file")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
