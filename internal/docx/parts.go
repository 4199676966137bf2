package docx

import (
	"time"

	"github.com/beevik/etree"
)

// XML namespaces and relationship types.
const (
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsW             = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR             = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsCP            = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsDC            = "http://purl.org/dc/elements/1.1/"
	nsDCTerms       = "http://purl.org/dc/terms/"
	nsXSI           = "http://www.w3.org/2001/XMLSchema-instance"
	nsExtended      = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"

	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
)

// Content types of the package parts.
const (
	ctRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML           = "application/xml"
	ctDocument      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ctStyles        = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ctCoreProps     = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtendedProps = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

func buildContentTypes() *etree.Document {
	doc := newXMLDocument()
	types := doc.CreateElement("Types")
	types.CreateAttr("xmlns", nsContentTypes)

	for _, d := range []struct{ ext, ct string }{
		{"rels", ctRelationships},
		{"xml", ctXML},
	} {
		def := types.CreateElement("Default")
		def.CreateAttr("Extension", d.ext)
		def.CreateAttr("ContentType", d.ct)
	}

	for _, o := range []struct{ part, ct string }{
		{"/word/document.xml", ctDocument},
		{"/word/styles.xml", ctStyles},
		{"/docProps/core.xml", ctCoreProps},
		{"/docProps/app.xml", ctExtendedProps},
	} {
		ov := types.CreateElement("Override")
		ov.CreateAttr("PartName", o.part)
		ov.CreateAttr("ContentType", o.ct)
	}
	return doc
}

type relationship struct {
	id, typ, target string
}

func buildRelationships(rels []relationship) *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement("Relationships")
	root.CreateAttr("xmlns", nsRelationships)
	for _, r := range rels {
		el := root.CreateElement("Relationship")
		el.CreateAttr("Id", r.id)
		el.CreateAttr("Type", r.typ)
		el.CreateAttr("Target", r.target)
	}
	return doc
}

func buildPackageRels() *etree.Document {
	return buildRelationships([]relationship{
		{"rId1", relOfficeDocument, "word/document.xml"},
		{"rId2", relCoreProps, "docProps/core.xml"},
		{"rId3", relExtendedProps, "docProps/app.xml"},
	})
}

func buildDocumentRels() *etree.Document {
	return buildRelationships([]relationship{
		{"rId1", relStyles, "styles.xml"},
	})
}

func buildCoreProps(meta Metadata, language string) *etree.Document {
	doc := newXMLDocument()
	cp := doc.CreateElement("cp:coreProperties")
	cp.CreateAttr("xmlns:cp", nsCP)
	cp.CreateAttr("xmlns:dc", nsDC)
	cp.CreateAttr("xmlns:dcterms", nsDCTerms)
	cp.CreateAttr("xmlns:xsi", nsXSI)

	setText := func(tag, value string) {
		if value != "" {
			cp.CreateElement(tag).SetText(xmlSafe(value))
		}
	}
	setText("dc:title", meta.Title)
	setText("dc:creator", meta.Creator)
	setText("dc:identifier", meta.Identifier)
	setText("dc:language", language)

	if !meta.Created.IsZero() {
		stamp := meta.Created.UTC().Format(time.RFC3339)
		for _, tag := range []string{"dcterms:created", "dcterms:modified"} {
			el := cp.CreateElement(tag)
			el.CreateAttr("xsi:type", "dcterms:W3CDTF")
			el.SetText(stamp)
		}
	}
	return doc
}

func buildAppProps(meta Metadata) *etree.Document {
	doc := newXMLDocument()
	props := doc.CreateElement("Properties")
	props.CreateAttr("xmlns", nsExtended)
	if meta.Application != "" {
		props.CreateElement("Application").SetText(xmlSafe(meta.Application))
	}
	return doc
}
