package pipeline

import (
	"strings"

	"github.com/alnah/go-report2docx/internal/document"
)

// Layout holds the fixed presentation settings applied to every document.
type Layout struct {
	Title      string
	Font       document.FontDirective
	FontSize   float64 // points
	TableWidth float64 // inches
}

// Stats summarizes one assembly pass.
type Stats struct {
	Lines         int
	Paragraphs    int
	Tables        int
	PaddedRows    int
	TruncatedRows int
}

// Assembler abstracts report-to-document assembly.
type Assembler interface {
	Assemble(report string) (*document.Document, Stats)
}

// ReportAssembler converts a preprocessed report into a Document in a single
// pass over its lines. It holds only the immutable Layout and is safe for
// concurrent use.
type ReportAssembler struct {
	layout Layout
}

// NewReportAssembler creates a ReportAssembler for the given layout.
func NewReportAssembler(layout Layout) *ReportAssembler {
	return &ReportAssembler{layout: layout}
}

// Assemble builds the document: the title paragraph, then paragraphs and
// tables in input order. A table still buffered when the input ends is
// flushed like any other.
func (a *ReportAssembler) Assemble(report string) (*document.Document, Stats) {
	doc := &document.Document{
		Title: document.Paragraph{
			Text:  a.layout.Title,
			Align: document.AlignCenter,
			Title: true,
		},
		Font:     a.layout.Font,
		FontSize: a.layout.FontSize,
	}

	var (
		st  Stats
		buf tableBuffer
	)

	flush := func() {
		if t, ok := buf.flush(a.layout.TableWidth, &st); ok {
			doc.Blocks = append(doc.Blocks, document.NewTableBlock(t))
			st.Tables++
		}
	}

	if report != "" {
		for _, line := range strings.Split(report, "\n") {
			st.Lines++
			kind := Classify(line)
			if kind != Plain {
				buf.add(kind, line)
				continue
			}

			if buf.state == inTable {
				flush()
			}
			if text := SanitizeLine(line); text != "" {
				doc.Blocks = append(doc.Blocks, document.NewParagraphBlock(document.Paragraph{
					Text:  text,
					Align: document.AlignLeft,
				}))
				st.Paragraphs++
			}
		}
	}

	if buf.state == inTable {
		flush()
	}

	return doc, st
}
