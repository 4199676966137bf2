package report2docx

import (
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-report2docx/internal/dateutil"
	"github.com/alnah/go-report2docx/internal/document"
	"github.com/alnah/go-report2docx/internal/docx"
)

// Layout defaults.
const (
	DefaultTitle          = "메디푸드 분석 리포트"
	DefaultFont           = "맑은 고딕"
	DefaultFontSize       = 10.0 // points
	DefaultTableWidth     = 7.0  // inches
	DefaultLanguage       = "ko-KR"
	DefaultFileNamePrefix = "medifood_report"
	DefaultFileDateFormat = dateutil.DefaultFileDateFormat
)

// Bounds accepted by the layout options.
const (
	MinFontSize   = 1.0
	MaxFontSize   = 144.0
	MaxTableWidth = 22.0 // inches
	MaxFontLength = 100
)

// MIMEType is the media type of rendered documents.
const MIMEType = docx.MIMEType

// fontScript is the script range the font directive targets.
const fontScript = "eastAsia"

// creator is recorded in the document properties.
const creator = "go-report2docx"

// Document is the assembled document model.
type Document = document.Document

// Input is a single render request.
type Input struct {
	Report string // Generated report text; empty yields a title-only document
}

// RenderResult holds the rendered document and its metadata.
type RenderResult struct {
	DOCX     []byte
	FileName string // Suggested download name, e.g. "medifood_report_1019.docx"
	MIMEType string
	Document *Document
	Stats    Stats
}

// Stats summarizes how a report was read.
type Stats struct {
	Lines         int // Input lines after preprocessing
	Paragraphs    int // Paragraph blocks, title excluded
	Tables        int
	PaddedRows    int // Table rows shorter than the header, padded with empty cells
	TruncatedRows int // Table rows longer than the header, cut to its width
}

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds layout and naming settings.
type rendererConfig struct {
	title          string
	font           string
	fontSize       float64
	tableWidth     float64
	language       string
	fileNamePrefix string
	fileDateFormat string
}

func defaultRendererConfig() rendererConfig {
	return rendererConfig{
		title:          DefaultTitle,
		font:           DefaultFont,
		fontSize:       DefaultFontSize,
		tableWidth:     DefaultTableWidth,
		language:       DefaultLanguage,
		fileNamePrefix: DefaultFileNamePrefix,
		fileDateFormat: DefaultFileDateFormat,
	}
}

// WithTitle sets the title paragraph text.
func WithTitle(title string) Option {
	return func(r *Renderer) {
		r.cfg.title = title
	}
}

// WithFont sets the font applied to every run.
func WithFont(name string) Option {
	return func(r *Renderer) {
		r.cfg.font = name
	}
}

// WithFontSize sets the base font size in points.
func WithFontSize(points float64) Option {
	return func(r *Renderer) {
		r.cfg.fontSize = points
	}
}

// WithTableWidth sets the total table width in inches.
func WithTableWidth(inches float64) Option {
	return func(r *Renderer) {
		r.cfg.tableWidth = inches
	}
}

// WithLanguage sets the East-Asian language tag (BCP 47) for every run.
func WithLanguage(tag string) Option {
	return func(r *Renderer) {
		r.cfg.language = tag
	}
}

// WithFileNamePrefix sets the suggested file name prefix.
// The prefix is slugified, so "Lab Report" becomes "lab-report".
func WithFileNamePrefix(prefix string) Option {
	return func(r *Renderer) {
		r.cfg.fileNamePrefix = prefix
	}
}

// WithFileDateFormat sets the date pattern appended to file names
// (see DefaultFileDateFormat). Presets such as "iso" and "compact" are accepted.
func WithFileDateFormat(format string) Option {
	return func(r *Renderer) {
		r.cfg.fileDateFormat = format
	}
}

// WithLogger sets the logger for render diagnostics.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithClock sets the time source used for file names and document
// properties. A nil function is ignored.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		if now != nil {
			r.now = now
		}
	}
}
