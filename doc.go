// Package report2docx renders generated medical analysis reports as Word
// documents.
//
// # Quick Start
//
// Create a renderer and render report text:
//
//	r, err := report2docx.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := r.Render(report2docx.Input{
//	    Report: "# 요약\n| 구분 | 아침 |\n|---|---|\n| 월 | 현미밥 |",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(result.FileName, result.DOCX, 0644)
//
// result.FileName embeds the render date, for example
// "medifood_report_1019.docx".
//
// # Rendering Pipeline
//
// A report is processed in a single pass:
//
//  1. Preprocessing (line endings, Unicode NFC)
//  2. Line classification: pipe rows, separator rows, plain lines
//  3. Assembly: a centered title, then paragraphs and tables in input order
//  4. Serialization to WordprocessingML (.docx)
//
// Markup is reduced, not interpreted: "*" runs are removed everywhere and
// "#" characters are removed from plain lines. Tables always span the
// configured width with equal columns. The header row and the first column
// are centered; every other cell is left aligned. Every run carries the same
// font, size and East-Asian font directive.
//
// # Configuration
//
// Use functional options to customize the renderer:
//
//	r, err := report2docx.NewRenderer(
//	    report2docx.WithTitle("검사 결과"),
//	    report2docx.WithFont("Noto Sans KR"),
//	    report2docx.WithTableWidth(6.5),
//	    report2docx.WithFileNamePrefix("lab_report"),
//	)
//
// A Renderer is immutable and safe for concurrent use.
//
// # Preview
//
// Preview renders the raw report as a GitHub-flavored HTML page, the way the
// report reads before reduction to a document:
//
//	html, err := r.Preview(ctx, report)
package report2docx
