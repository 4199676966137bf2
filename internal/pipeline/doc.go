// Package pipeline implements the report-to-document conversion stages.
//
// The stages run in a single pass over the report lines:
//   - Preprocessing (line endings, Unicode NFC)
//   - Line classification into table rows, separator rows and plain lines
//   - Markup sanitizing (emphasis and heading markers)
//   - Table buffering with end-of-input flush and ragged-row padding
//   - Column width allocation (equal split of the page width)
//   - Document assembly (title first, blocks in source order)
//
// The package also renders an HTML preview of the raw report via Goldmark.
// DOCX serialization is handled separately by internal/docx, which keeps this
// package free of any container or XML concerns.
package pipeline
