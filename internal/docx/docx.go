// Package docx serializes an assembled report into an Office Open XML
// WordprocessingML package (.docx).
//
// Each package part is built as an etree document and written into a zip
// container. Output is deterministic for identical documents and metadata:
// parts are written in a fixed order and every zip entry carries the
// metadata timestamp.
package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/beevik/etree"

	"github.com/alnah/go-report2docx/internal/document"
)

// MIMEType is the media type of a WordprocessingML document.
const MIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Extension is the file extension for generated documents.
const Extension = ".docx"

// Sentinel errors for serialization.
var (
	ErrNilDocument = errors.New("docx: nil document")
	ErrWritePart   = errors.New("docx: failed to write package part")
)

// Metadata populates docProps/core.xml and docProps/app.xml.
type Metadata struct {
	Title       string
	Creator     string
	Identifier  string
	Application string
	Created     time.Time
}

// Serializer abstracts document serialization.
type Serializer interface {
	Serialize(doc *document.Document, meta Metadata) ([]byte, error)
}

// Writer produces .docx packages. The zero value is ready to use.
type Writer struct{}

// Serialize renders doc into a complete .docx package.
func (w *Writer) Serialize(doc *document.Document, meta Metadata) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, doc, meta); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// part is one named entry of the package.
type part struct {
	name  string
	build func() *etree.Document
}

// Write renders doc as a .docx package to out.
func Write(out io.Writer, doc *document.Document, meta Metadata) error {
	if doc == nil {
		return ErrNilDocument
	}

	parts := []part{
		{"[Content_Types].xml", buildContentTypes},
		{"_rels/.rels", buildPackageRels},
		{"docProps/core.xml", func() *etree.Document { return buildCoreProps(meta, doc.Font.Language) }},
		{"docProps/app.xml", func() *etree.Document { return buildAppProps(meta) }},
		{"word/_rels/document.xml.rels", buildDocumentRels},
		{"word/styles.xml", func() *etree.Document { return buildStyles(doc) }},
		{"word/document.xml", func() *etree.Document { return buildDocument(doc) }},
	}

	zw := zip.NewWriter(out)
	for _, p := range parts {
		if err := writeXMLToZip(zw, p.name, p.build(), meta.Created); err != nil {
			_ = zw.Close()
			return fmt.Errorf("%w: %s: %v", ErrWritePart, p.name, err)
		}
	}
	return zw.Close()
}

func writeXMLToZip(zw *zip.Writer, name string, doc *etree.Document, modified time.Time) error {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return err
	}
	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: modified,
	})
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// newXMLDocument returns an etree document with the standard OOXML declaration.
func newXMLDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	return doc
}
