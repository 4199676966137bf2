// Package document defines the laid-out report model produced by the pipeline
// and consumed by the DOCX serializer.
//
// A Document is plain data: it holds no references to the source text and no
// serializer state, so it can be compared structurally in tests and rendered
// any number of times.
package document

// Alignment is the horizontal alignment of a paragraph or table cell.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
)

// String returns the WordprocessingML justification value.
func (a Alignment) String() string {
	if a == AlignCenter {
		return "center"
	}
	return "left"
}

// BlockKind identifies the concrete type carried by a Block.
type BlockKind int

const (
	KindParagraph BlockKind = iota
	KindTable
)

// FontDirective pins the font used for every run of the document.
// Script names the range the font is forced on ("eastAsia" for CJK text) so the
// rendering engine does not substitute its own default for those glyphs.
type FontDirective struct {
	Name     string
	Script   string
	Language string // BCP-47 tag for the script range, e.g. "ko-KR"
}

// Paragraph is a single run of text with an alignment.
type Paragraph struct {
	Text  string
	Align Alignment
	Title bool
}

// Table is a render-ready table. Every row has exactly len(Widths) cells.
type Table struct {
	Rows   [][]string
	Widths []float64 // inches, all equal, summing to the document table width
}

// Columns returns the fixed column count of the table.
func (t *Table) Columns() int {
	return len(t.Widths)
}

// CellAlign returns the positional alignment of the cell at row i, column j:
// header row and first column are centered, everything else is left-aligned.
func (t *Table) CellAlign(i, j int) Alignment {
	if i == 0 || j == 0 {
		return AlignCenter
	}
	return AlignLeft
}

// Block is one element of the document body.
type Block struct {
	Kind      BlockKind
	Paragraph *Paragraph
	Table     *Table
}

// NewParagraphBlock wraps p in a Block.
func NewParagraphBlock(p Paragraph) Block {
	return Block{Kind: KindParagraph, Paragraph: &p}
}

// NewTableBlock wraps t in a Block.
func NewTableBlock(t Table) Block {
	return Block{Kind: KindTable, Table: &t}
}

// Document is the assembled report: one title paragraph followed by body
// blocks in source order, rendered with a single font directive and size.
type Document struct {
	Title    Paragraph
	Blocks   []Block
	Font     FontDirective
	FontSize float64 // points
}

// Tables returns the table blocks in document order.
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, b := range d.Blocks {
		if b.Kind == KindTable {
			tables = append(tables, b.Table)
		}
	}
	return tables
}

// Paragraphs returns the body paragraphs in document order (title excluded).
func (d *Document) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	for _, b := range d.Blocks {
		if b.Kind == KindParagraph {
			paras = append(paras, b.Paragraph)
		}
	}
	return paras
}
