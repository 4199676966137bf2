package main

import (
	"errors"
	"os"

	report2docx "github.com/alnah/go-report2docx"
	"github.com/alnah/go-report2docx/internal/config"
	"github.com/alnah/go-report2docx/internal/dateutil"
	"github.com/alnah/go-report2docx/internal/generate"
)

// Exit codes for the report2docx CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // All documents written
	ExitGeneral    = 1 // General/unexpected error
	ExitUsage      = 2 // Invalid flags, config, or patient data
	ExitIO         = 3 // File not found, permission denied
	ExitGeneration = 4 // Generation service errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Generation service errors (exit 4)
	if errors.Is(err, generate.ErrGeneration) ||
		errors.Is(err, generate.ErrEmptyResponse) ||
		errors.Is(err, generate.ErrTimeout) {
		return ExitGeneration
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadReport) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoReports) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrConfigTooLarge) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, report2docx.ErrInvalidTitle) ||
		errors.Is(err, report2docx.ErrInvalidFont) ||
		errors.Is(err, report2docx.ErrInvalidFontSize) ||
		errors.Is(err, report2docx.ErrInvalidTableWidth) ||
		errors.Is(err, report2docx.ErrInvalidLanguage) ||
		errors.Is(err, report2docx.ErrInvalidFileName) ||
		errors.Is(err, generate.ErrNoAPIKey) ||
		errors.Is(err, generate.ErrInvalidAge) ||
		errors.Is(err, generate.ErrInvalidGender) ||
		errors.Is(err, generate.ErrUnknownCondition) ||
		errors.Is(err, generate.ErrMissingSymptoms) ||
		errors.Is(err, generate.ErrFieldTooLong) {
		return ExitUsage
	}

	return ExitGeneral
}
