package docx

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/alnah/go-report2docx/internal/document"
)

// Style IDs defined in styles.xml.
const (
	styleTitle     = "Title"
	styleTableGrid = "TableGrid"
)

// A4 portrait page in twips, with side margins leaving room for a 7 inch table.
const (
	pageWidthTwips   = 11906
	pageHeightTwips  = 16838
	pageMarginTwips  = 1134 // 0.79 in, top and bottom
	pageSideMargin   = 850  // 0.59 in, left and right
	headerFooterDist = 708
)

func buildDocument(doc *document.Document) *etree.Document {
	xdoc := newXMLDocument()
	root := xdoc.CreateElement("w:document")
	root.CreateAttr("xmlns:w", nsW)
	root.CreateAttr("xmlns:r", nsR)

	body := root.CreateElement("w:body")
	rs := newRunStyle(doc)

	writeParagraph(body, doc.Title, rs)
	for _, b := range doc.Blocks {
		switch b.Kind {
		case document.KindParagraph:
			writeParagraph(body, *b.Paragraph, rs)
		case document.KindTable:
			writeTable(body, b.Table, rs)
			// Spacer so consecutive tables do not merge.
			body.CreateElement("w:p")
		}
	}

	writeSection(body)
	return xdoc
}

func writeParagraph(parent *etree.Element, p document.Paragraph, rs runStyle) {
	el := parent.CreateElement("w:p")
	ppr := el.CreateElement("w:pPr")
	if p.Title {
		ppr.CreateElement("w:pStyle").CreateAttr("w:val", styleTitle)
	}
	ppr.CreateElement("w:jc").CreateAttr("w:val", p.Align.String())
	writeRun(el, p.Text, rs)
}

func writeTable(parent *etree.Element, t *document.Table, rs runStyle) {
	tbl := parent.CreateElement("w:tbl")

	widths := make([]int, len(t.Widths))
	total := 0
	for i, w := range t.Widths {
		widths[i] = inchesToTwips(w)
		total += widths[i]
	}

	tblPr := tbl.CreateElement("w:tblPr")
	tblPr.CreateElement("w:tblStyle").CreateAttr("w:val", styleTableGrid)
	tblW := tblPr.CreateElement("w:tblW")
	tblW.CreateAttr("w:w", strconv.Itoa(total))
	tblW.CreateAttr("w:type", "dxa")
	tblPr.CreateElement("w:tblLayout").CreateAttr("w:type", "fixed")
	look := tblPr.CreateElement("w:tblLook")
	look.CreateAttr("w:val", "04A0")
	look.CreateAttr("w:firstRow", "1")
	look.CreateAttr("w:firstColumn", "1")

	grid := tbl.CreateElement("w:tblGrid")
	for _, w := range widths {
		grid.CreateElement("w:gridCol").CreateAttr("w:w", strconv.Itoa(w))
	}

	for i, row := range t.Rows {
		tr := tbl.CreateElement("w:tr")
		for j := range widths {
			var text string
			if j < len(row) {
				text = row[j]
			}
			tc := tr.CreateElement("w:tc")
			tcW := tc.CreateElement("w:tcPr").CreateElement("w:tcW")
			tcW.CreateAttr("w:w", strconv.Itoa(widths[j]))
			tcW.CreateAttr("w:type", "dxa")

			p := tc.CreateElement("w:p")
			p.CreateElement("w:pPr").CreateElement("w:jc").CreateAttr("w:val", t.CellAlign(i, j).String())
			writeRun(p, text, rs)
		}
	}
}

func writeRun(p *etree.Element, text string, rs runStyle) {
	r := p.CreateElement("w:r")
	rs.apply(r.CreateElement("w:rPr"))
	t := r.CreateElement("w:t")
	t.CreateAttr("xml:space", "preserve")
	t.SetText(xmlSafe(text))
}

func writeSection(body *etree.Element) {
	sect := body.CreateElement("w:sectPr")
	pgSz := sect.CreateElement("w:pgSz")
	pgSz.CreateAttr("w:w", strconv.Itoa(pageWidthTwips))
	pgSz.CreateAttr("w:h", strconv.Itoa(pageHeightTwips))

	pgMar := sect.CreateElement("w:pgMar")
	for _, a := range []struct {
		name string
		val  int
	}{
		{"w:top", pageMarginTwips},
		{"w:right", pageSideMargin},
		{"w:bottom", pageMarginTwips},
		{"w:left", pageSideMargin},
		{"w:header", headerFooterDist},
		{"w:footer", headerFooterDist},
		{"w:gutter", 0},
	} {
		pgMar.CreateAttr(a.name, strconv.Itoa(a.val))
	}
}

// runStyle is the font directive rendered as run properties.
type runStyle struct {
	font      string
	script    string
	language  string
	halfPoint string
}

func newRunStyle(doc *document.Document) runStyle {
	return runStyle{
		font:      doc.Font.Name,
		script:    doc.Font.Script,
		language:  doc.Font.Language,
		halfPoint: strconv.Itoa(pointsToHalfPoints(doc.FontSize)),
	}
}

// apply writes rFonts, size and language into an rPr element, in schema order.
func (rs runStyle) apply(rpr *etree.Element) {
	if rs.font != "" {
		fonts := rpr.CreateElement("w:rFonts")
		fonts.CreateAttr("w:ascii", rs.font)
		fonts.CreateAttr("w:hAnsi", rs.font)
		if rs.script != "" && rs.script != "ascii" && rs.script != "hAnsi" {
			fonts.CreateAttr("w:"+rs.script, rs.font)
		}
	}
	rpr.CreateElement("w:sz").CreateAttr("w:val", rs.halfPoint)
	rpr.CreateElement("w:szCs").CreateAttr("w:val", rs.halfPoint)
	if rs.language != "" {
		rpr.CreateElement("w:lang").CreateAttr("w:"+langAttr(rs.script), rs.language)
	}
}

// langAttr maps a font script slot to the matching w:lang attribute.
func langAttr(script string) string {
	switch script {
	case "eastAsia":
		return "eastAsia"
	case "cs":
		return "bidi"
	default:
		return "val"
	}
}

// xmlSafe drops runes that are not allowed in XML 1.0 character data.
func xmlSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return r
		case r < 0x20, r == 0xFFFE, r == 0xFFFF:
			return -1
		case r >= 0xD800 && r <= 0xDFFF:
			return -1
		}
		return r
	}, s)
}
