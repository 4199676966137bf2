package report2docx

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/alnah/go-report2docx/internal/document"
	"github.com/alnah/go-report2docx/internal/docx"
)

var fixedTime = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

// newTestRenderer returns a Renderer with a fixed clock and identifier.
func newTestRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()

	opts = append([]Option{WithClock(fixedClock)}, opts...)
	r, err := NewRenderer(opts...)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	r.newID = func() (uuid.UUID, error) {
		return uuid.MustParse("0192f5c4-0000-7000-8000-000000000000"), nil
	}
	return r
}

// blockView flattens a Document for comparison.
type blockView struct {
	Paragraph string
	Rows      [][]string
}

func viewBlocks(doc *Document) []blockView {
	var out []blockView
	for _, b := range doc.Blocks {
		switch b.Kind {
		case document.KindParagraph:
			out = append(out, blockView{Paragraph: b.Paragraph.Text})
		case document.KindTable:
			out = append(out, blockView{Rows: b.Table.Rows})
		}
	}
	return out
}

func TestRender_Examples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		report string
		want   []blockView
	}{
		{
			name:   "heading, table and closing line",
			report: "# Title\n|A|B|\n|-|-|\n|1|2|\nEnd.",
			want: []blockView{
				{Paragraph: "Title"},
				{Rows: [][]string{{"A", "B"}, {"1", "2"}}},
				{Paragraph: "End."},
			},
		},
		{
			name:   "table at end of input is flushed",
			report: "intro\n| 요일 | 아침 |\n|---|---|\n| 월 | 현미밥 |",
			want: []blockView{
				{Paragraph: "intro"},
				{Rows: [][]string{{"요일", "아침"}, {"월", "현미밥"}}},
			},
		},
		{
			name:   "ragged short row is padded",
			report: "|A|B|C|\n|1|2|",
			want: []blockView{
				{Rows: [][]string{{"A", "B", "C"}, {"1", "2", ""}}},
			},
		},
		{
			name:   "emphasis markers removed",
			report: "**bold** text",
			want:   []blockView{{Paragraph: "bold text"}},
		},
	}

	r := newTestRenderer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := r.Render(Input{Report: tt.report})
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if res.Document.Title.Text != DefaultTitle {
				t.Errorf("title = %q, want %q", res.Document.Title.Text, DefaultTitle)
			}
			if res.Document.Title.Align != document.AlignCenter {
				t.Errorf("title alignment = %v, want center", res.Document.Title.Align)
			}
			if diff := cmp.Diff(tt.want, viewBlocks(res.Document)); diff != "" {
				t.Errorf("blocks mismatch (-want +got):\n%s", diff)
			}
			for _, tbl := range res.Document.Tables() {
				var sum float64
				for _, w := range tbl.Widths {
					sum += w
				}
				if diff := sum - DefaultTableWidth; diff > 1e-9 || diff < -1e-9 {
					t.Errorf("column widths sum to %v, want %v", sum, DefaultTableWidth)
				}
			}
		})
	}
}

func TestRender_EmptyReport(t *testing.T) {
	t.Parallel()

	res, err := newTestRenderer(t).Render(Input{})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if len(res.Document.Blocks) != 0 {
		t.Errorf("got %d blocks, want title only", len(res.Document.Blocks))
	}
	if len(res.DOCX) == 0 {
		t.Error("DOCX is empty")
	}
}

func TestRender_Result(t *testing.T) {
	t.Parallel()

	res, err := newTestRenderer(t).Render(Input{Report: "|a|b|\n|c|d|e|"})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if res.FileName != "medifood_report_1019.docx" {
		t.Errorf("FileName = %q, want medifood_report_1019.docx", res.FileName)
	}
	if res.MIMEType != docx.MIMEType {
		t.Errorf("MIMEType = %q", res.MIMEType)
	}
	want := Stats{Lines: 2, Tables: 1, TruncatedRows: 1}
	if diff := cmp.Diff(want, res.Stats); diff != "" {
		t.Errorf("Stats mismatch (-want +got):\n%s", diff)
	}

	zr, err := zip.NewReader(bytes.NewReader(res.DOCX), int64(len(res.DOCX)))
	if err != nil {
		t.Fatalf("DOCX is not a zip archive: %v", err)
	}
	found := false
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			found = true
		}
	}
	if !found {
		t.Error("word/document.xml missing")
	}
}

func TestRender_Idempotent(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)
	report := "# 요약\n| 구분 | 값 |\n|:-:|---|\n| **나트륨** | 2g |\n끝"

	first, err := r.Render(Input{Report: report})
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Render(Input{Report: report})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.DOCX, second.DOCX) {
		t.Error("identical input produced different documents")
	}
	if diff := cmp.Diff(first.Document, second.Document); diff != "" {
		t.Errorf("documents differ (-first +second):\n%s", diff)
	}
}

func TestRender_CustomLayout(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t,
		WithTitle("검사 결과"),
		WithFont("Noto Sans KR"),
		WithFontSize(11),
		WithTableWidth(6),
		WithLanguage("ko-kr"),
		WithFileNamePrefix("Lab Report"),
		WithFileDateFormat("iso"),
	)

	res, err := r.Render(Input{Report: "|a|b|c|"})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	doc := res.Document
	if doc.Title.Text != "검사 결과" {
		t.Errorf("title = %q", doc.Title.Text)
	}
	wantFont := document.FontDirective{Name: "Noto Sans KR", Script: "eastAsia", Language: "ko-KR"}
	if diff := cmp.Diff(wantFont, doc.Font); diff != "" {
		t.Errorf("font mismatch (-want +got):\n%s", diff)
	}
	if doc.FontSize != 11 {
		t.Errorf("FontSize = %v, want 11", doc.FontSize)
	}
	if diff := cmp.Diff([]float64{2, 2, 2}, doc.Tables()[0].Widths); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
	if res.FileName != "lab-report_2026-10-19.docx" {
		t.Errorf("FileName = %q", res.FileName)
	}
}

func TestRender_LogsRaggedRows(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	r := newTestRenderer(t, WithLogger(zap.New(core)))

	if _, err := r.Render(Input{Report: "|A|B|C|\n|1|2|"}); err != nil {
		t.Fatal(err)
	}

	entries := logs.FilterMessage("Ragged table rows normalized").All()
	if len(entries) != 1 {
		t.Fatalf("got %d ragged-row entries, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["padded"]; got != int64(1) {
		t.Errorf("padded = %v, want 1", got)
	}
}

// panicSerializer simulates an internal failure.
type panicSerializer struct{}

func (panicSerializer) Serialize(*document.Document, docx.Metadata) ([]byte, error) {
	panic("boom")
}

// failSerializer returns an error.
type failSerializer struct{}

func (failSerializer) Serialize(*document.Document, docx.Metadata) ([]byte, error) {
	return nil, fmt.Errorf("%w: word/document.xml: disk full", docx.ErrWritePart)
}

func TestRender_Failures(t *testing.T) {
	t.Parallel()

	t.Run("panic is recovered", func(t *testing.T) {
		t.Parallel()

		r := newTestRenderer(t)
		r.serializer = panicSerializer{}

		res, err := r.Render(Input{Report: "x"})
		if !errors.Is(err, ErrRender) {
			t.Errorf("error = %v, want ErrRender", err)
		}
		if res != nil {
			t.Error("result should be nil after a panic")
		}
	})

	t.Run("serializer error is wrapped", func(t *testing.T) {
		t.Parallel()

		r := newTestRenderer(t)
		r.serializer = failSerializer{}

		_, err := r.Render(Input{Report: "x"})
		if !errors.Is(err, ErrRender) || !strings.Contains(err.Error(), "disk full") {
			t.Errorf("error = %v, want wrapped ErrRender", err)
		}
		if !errors.Is(err, docx.ErrWritePart) {
			t.Errorf("error = %v, want docx.ErrWritePart in chain", err)
		}
	})

	t.Run("identifier failure", func(t *testing.T) {
		t.Parallel()

		r := newTestRenderer(t)
		r.newID = func() (uuid.UUID, error) { return uuid.Nil, errors.New("no entropy") }

		_, err := r.Render(Input{Report: "x"})
		if !errors.Is(err, ErrRender) {
			t.Errorf("error = %v, want ErrRender", err)
		}
	})
}

func TestNewRenderer_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opt     Option
		wantErr error
	}{
		{name: "empty title", opt: WithTitle("  "), wantErr: ErrInvalidTitle},
		{name: "empty font", opt: WithFont(""), wantErr: ErrInvalidFont},
		{name: "long font", opt: WithFont(strings.Repeat("f", MaxFontLength+1)), wantErr: ErrInvalidFont},
		{name: "zero font size", opt: WithFontSize(0), wantErr: ErrInvalidFontSize},
		{name: "huge font size", opt: WithFontSize(MaxFontSize + 1), wantErr: ErrInvalidFontSize},
		{name: "zero table width", opt: WithTableWidth(0), wantErr: ErrInvalidTableWidth},
		{name: "wide table", opt: WithTableWidth(MaxTableWidth + 1), wantErr: ErrInvalidTableWidth},
		{name: "bad language", opt: WithLanguage("not a tag!"), wantErr: ErrInvalidLanguage},
		{name: "bad date format", opt: WithFileDateFormat("[MM"), wantErr: ErrInvalidFileName},
		{name: "unusable prefix", opt: WithFileNamePrefix("///"), wantErr: ErrInvalidFileName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewRenderer(tt.opt)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewRenderer() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewRenderer_NilOptionsIgnored(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(WithLogger(nil), WithClock(nil))
	if err != nil {
		t.Fatal(err)
	}
	if r.logger == nil || r.now == nil {
		t.Error("nil logger or clock replaced the defaults")
	}
}

func TestPreview(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)
	html, err := r.Preview(context.Background(), "# 요약\r\n\r\n| a | b |\r\n|---|---|\r\n| 1 | 2 |\r\n")
	if err != nil {
		t.Fatalf("Preview() error: %v", err)
	}
	for _, want := range []string{`lang="ko-KR"`, "<title>메디푸드 분석 리포트</title>", "<table>", "<h1"} {
		if !strings.Contains(html, want) {
			t.Errorf("preview missing %q", want)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Preview(ctx, "x")
	if !errors.Is(err, ErrPreview) || !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled Preview() error = %v, want ErrPreview wrapping context.Canceled", err)
	}
	if n := strings.Count(err.Error(), ErrPreview.Error()); n != 1 {
		t.Errorf("cancelled Preview() error = %q, names the failure %d times", err, n)
	}
}

func TestFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		prefix  string
		format  string
		want    string
		wantErr bool
	}{
		{name: "default", prefix: DefaultFileNamePrefix, format: DefaultFileDateFormat, want: "medifood_report_1019.docx"},
		{name: "spaces slugified", prefix: "My Report", format: "compact", want: "my-report_20261019.docx"},
		{name: "time stamp", prefix: "r", format: "MMDD-HHmm", want: "r_1019-0930.docx"},
		{name: "empty prefix", prefix: "", format: "MMDD", wantErr: true},
		{name: "bad format", prefix: "r", format: "[x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := FileName(tt.prefix, tt.format, fixedTime)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFileName) {
					t.Errorf("error = %v, want ErrInvalidFileName", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FileName() = %q, want %q", got, tt.want)
			}
		})
	}
}
