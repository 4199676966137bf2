package docx

import (
	"github.com/beevik/etree"

	"github.com/alnah/go-report2docx/internal/document"
)

// Title style run size in half-points (28 pt) used when a run carries no size.
const titleStyleHalfPoints = "56"

// buildStyles writes the Normal, Title and table styles. The font directive is
// set on docDefaults and Normal as well as on each run, so text inserted later
// in a word processor keeps the same glyphs.
func buildStyles(doc *document.Document) *etree.Document {
	xdoc := newXMLDocument()
	styles := xdoc.CreateElement("w:styles")
	styles.CreateAttr("xmlns:w", nsW)

	rs := newRunStyle(doc)

	defaults := styles.CreateElement("w:docDefaults")
	rs.apply(defaults.CreateElement("w:rPrDefault").CreateElement("w:rPr"))
	spacing := defaults.CreateElement("w:pPrDefault").CreateElement("w:pPr").CreateElement("w:spacing")
	spacing.CreateAttr("w:after", "120")
	spacing.CreateAttr("w:line", "276")
	spacing.CreateAttr("w:lineRule", "auto")

	normal := newStyle(styles, "paragraph", "Normal", "Normal", true)
	normal.CreateElement("w:qFormat")
	rs.apply(normal.CreateElement("w:rPr"))

	title := newStyle(styles, "paragraph", styleTitle, "Title", false)
	title.CreateElement("w:basedOn").CreateAttr("w:val", "Normal")
	title.CreateElement("w:next").CreateAttr("w:val", "Normal")
	title.CreateElement("w:qFormat")
	title.CreateElement("w:pPr").CreateElement("w:spacing").CreateAttr("w:after", "240")
	trpr := title.CreateElement("w:rPr")
	trpr.CreateElement("w:b")
	trpr.CreateElement("w:sz").CreateAttr("w:val", titleStyleHalfPoints)

	tableNormal := newStyle(styles, "table", "TableNormal", "Normal Table", true)
	tblPr := tableNormal.CreateElement("w:tblPr")
	ind := tblPr.CreateElement("w:tblInd")
	ind.CreateAttr("w:w", "0")
	ind.CreateAttr("w:type", "dxa")
	mar := tblPr.CreateElement("w:tblCellMar")
	for _, side := range []struct{ tag, w string }{
		{"w:top", "0"}, {"w:left", "108"}, {"w:bottom", "0"}, {"w:right", "108"},
	} {
		el := mar.CreateElement(side.tag)
		el.CreateAttr("w:w", side.w)
		el.CreateAttr("w:type", "dxa")
	}

	grid := newStyle(styles, "table", styleTableGrid, "Table Grid", false)
	grid.CreateElement("w:basedOn").CreateAttr("w:val", "TableNormal")
	borders := grid.CreateElement("w:tblPr").CreateElement("w:tblBorders")
	for _, edge := range []string{"w:top", "w:left", "w:bottom", "w:right", "w:insideH", "w:insideV"} {
		b := borders.CreateElement(edge)
		b.CreateAttr("w:val", "single")
		b.CreateAttr("w:sz", "4")
		b.CreateAttr("w:space", "0")
		b.CreateAttr("w:color", "auto")
	}

	return xdoc
}

func newStyle(parent *etree.Element, typ, id, name string, isDefault bool) *etree.Element {
	s := parent.CreateElement("w:style")
	s.CreateAttr("w:type", typ)
	if isDefault {
		s.CreateAttr("w:default", "1")
	}
	s.CreateAttr("w:styleId", id)
	s.CreateElement("w:name").CreateAttr("w:val", name)
	return s
}
