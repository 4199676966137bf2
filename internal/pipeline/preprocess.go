package pipeline

import (
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Preprocessor defines the contract for report preprocessing.
type Preprocessor interface {
	Preprocess(content string) string
}

// ReportPreprocessor prepares generated report text for line classification.
type ReportPreprocessor struct{}

// Preprocess normalizes line endings and composes Unicode to NFC.
// Generated Hangul may arrive as decomposed jamo, which some fonts render as
// separate letters; NFC yields precomposed syllables.
func (p *ReportPreprocessor) Preprocess(content string) string {
	content = normalizeLineEndings(content)
	return norm.NFC.String(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
