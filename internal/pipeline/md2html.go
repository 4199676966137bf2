package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// previewTemplate wraps Goldmark's fragment output in a standalone page.
// Arguments: language tag, escaped title, font family, body.
const previewTemplate = `<!DOCTYPE html>
<html lang="%s">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: "%s", sans-serif; max-width: 48em; margin: 2em auto; }
table { border-collapse: collapse; width: 100%%; table-layout: fixed; }
th, td { border: 1px solid #444; padding: 4px 6px; }
th, td:first-child { text-align: center; }
</style>
</head>
<body>
%s
</body>
</html>`

// PreviewConverter abstracts raw report to HTML preview conversion.
type PreviewConverter interface {
	ToHTML(ctx context.Context, content string, page PreviewPage) (string, error)
}

// PreviewPage carries page-level values for the preview template.
type PreviewPage struct {
	Title    string
	Font     string
	Language string
}

// GoldmarkPreview renders the generated report as GitHub-flavored HTML, the
// same view the report author sees before downloading the document.
type GoldmarkPreview struct {
	md goldmark.Markdown
}

// NewGoldmarkPreview creates a GoldmarkPreview with GFM tables and code highlighting.
func NewGoldmarkPreview() *GoldmarkPreview {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
			gmhtml.WithXHTML(),
		),
	)
	return &GoldmarkPreview{md: md}
}

// ToHTML converts report text to a standalone HTML page.
// Goldmark has no context support, so conversion runs in a goroutine and the
// caller's context bounds the wait.
func (c *GoldmarkPreview) ToHTML(ctx context.Context, content string, page PreviewPage) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: err}
			return
		}
		done <- result{html: fmt.Sprintf(previewTemplate,
			html.EscapeString(page.Language),
			html.EscapeString(page.Title),
			html.EscapeString(page.Font),
			buf.String(),
		)}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
