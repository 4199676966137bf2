package report2docx

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/alnah/go-report2docx/internal/dateutil"
	"github.com/alnah/go-report2docx/internal/document"
	"github.com/alnah/go-report2docx/internal/docx"
	"github.com/alnah/go-report2docx/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.Preprocessor     = (*pipeline.ReportPreprocessor)(nil)
	_ pipeline.Assembler        = (*pipeline.ReportAssembler)(nil)
	_ pipeline.PreviewConverter = (*pipeline.GoldmarkPreview)(nil)
	_ docx.Serializer           = (*docx.Writer)(nil)
)

// Renderer turns report text into a .docx document.
// Create with NewRenderer; a Renderer holds no per-call state and is safe
// for concurrent use.
type Renderer struct {
	cfg          rendererConfig
	preprocessor pipeline.Preprocessor
	assembler    pipeline.Assembler
	serializer   docx.Serializer
	preview      pipeline.PreviewConverter
	logger       *zap.Logger
	now          func() time.Time
	newID        func() (uuid.UUID, error)
}

// NewRenderer creates a Renderer with the default layout: the
// "메디푸드 분석 리포트" title, 맑은 고딕 at 10pt, and 7-inch tables.
// Returns an error if an option sets an invalid value.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg:          defaultRendererConfig(),
		preprocessor: &pipeline.ReportPreprocessor{},
		serializer:   &docx.Writer{},
		preview:      pipeline.NewGoldmarkPreview(),
		logger:       zap.NewNop(),
		now:          time.Now,
		newID:        uuid.NewV7,
	}

	for _, opt := range opts {
		opt(r)
	}

	if err := r.cfg.validate(); err != nil {
		return nil, err
	}

	r.assembler = pipeline.NewReportAssembler(pipeline.Layout{
		Title: r.cfg.title,
		Font: document.FontDirective{
			Name:     r.cfg.font,
			Script:   fontScript,
			Language: r.cfg.language,
		},
		FontSize:   r.cfg.fontSize,
		TableWidth: r.cfg.tableWidth,
	})

	return r, nil
}

// Render builds the document for input.Report and serializes it.
// Empty input is not an error: the result holds a title-only document.
// Recovers from internal panics so a malformed report never crashes the caller.
func (r *Renderer) Render(input Input) (result *RenderResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = fmt.Errorf("%w: internal error: %v", ErrRender, rec)
		}
	}()

	report := r.preprocessor.Preprocess(input.Report)
	doc, st := r.assembler.Assemble(report)

	r.logger.Debug("Report assembled",
		zap.Int("lines", st.Lines),
		zap.Int("paragraphs", st.Paragraphs),
		zap.Int("tables", st.Tables))
	if st.PaddedRows > 0 || st.TruncatedRows > 0 {
		r.logger.Debug("Ragged table rows normalized",
			zap.Int("padded", st.PaddedRows),
			zap.Int("truncated", st.TruncatedRows))
	}

	now := r.now()
	meta, err := r.metadata(now)
	if err != nil {
		return nil, err
	}

	data, err := r.serializer.Serialize(doc, meta)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	name, err := FileName(r.cfg.fileNamePrefix, r.cfg.fileDateFormat, now)
	if err != nil {
		return nil, err
	}

	return &RenderResult{
		DOCX:     data,
		FileName: name,
		MIMEType: MIMEType,
		Document: doc,
		Stats:    Stats(st),
	}, nil
}

// Preview renders the raw report as a standalone HTML page.
// The context is used for cancellation.
func (r *Renderer) Preview(ctx context.Context, report string) (string, error) {
	page := pipeline.PreviewPage{
		Title:    r.cfg.title,
		Font:     r.cfg.font,
		Language: r.cfg.language,
	}
	html, err := r.preview.ToHTML(ctx, r.preprocessor.Preprocess(report), page)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPreview, err)
	}
	return html, nil
}

// FileName returns the suggested name for a document rendered now.
func (r *Renderer) FileName(now time.Time) (string, error) {
	return FileName(r.cfg.fileNamePrefix, r.cfg.fileDateFormat, now)
}

// metadata builds the document properties for one render.
func (r *Renderer) metadata(now time.Time) (docx.Metadata, error) {
	id, err := r.newID()
	if err != nil {
		return docx.Metadata{}, fmt.Errorf("%w: generating identifier: %w", ErrRender, err)
	}
	return docx.Metadata{
		Title:       r.cfg.title,
		Creator:     creator,
		Identifier:  "urn:uuid:" + id.String(),
		Application: creator,
		Created:     now,
	}, nil
}

// validate checks option values and canonicalizes the language tag.
func (c *rendererConfig) validate() error {
	if strings.TrimSpace(c.title) == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrInvalidTitle)
	}
	if strings.TrimSpace(c.font) == "" || len(c.font) > MaxFontLength {
		return fmt.Errorf("%w: %q", ErrInvalidFont, c.font)
	}
	if c.fontSize < MinFontSize || c.fontSize > MaxFontSize {
		return fmt.Errorf("%w: must be between %.0f and %.0f, got %.2f",
			ErrInvalidFontSize, MinFontSize, MaxFontSize, c.fontSize)
	}
	if c.tableWidth <= 0 || c.tableWidth > MaxTableWidth {
		return fmt.Errorf("%w: must be in (0, %.0f] inches, got %.2f",
			ErrInvalidTableWidth, MaxTableWidth, c.tableWidth)
	}

	tag, err := language.Parse(c.language)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidLanguage, c.language, err)
	}
	c.language = tag.String()

	if _, err := dateutil.Layout(c.fileDateFormat); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFileName, err)
	}
	if fileNameSlug(c.fileNamePrefix) == "" {
		return fmt.Errorf("%w: prefix %q has no usable characters", ErrInvalidFileName, c.fileNamePrefix)
	}
	return nil
}
