// Package docx renders a compiled manuscript as a WordprocessingML (.docx)
// document in Standard Manuscript Format.
//
// # Layout
//
// The first page carries a borderless two-column table (contact details on
// the left, approximate word count on the right), the centered title and
// byline about a third of the way down, then the body. Every later page has
// a right-aligned running header:
//
//	Writer / The Lighthouse / 7
//
// Body paragraphs are double spaced with a first-line indent. Section breaks
// start a new page with the heading centered vertically; scene separators are
// a centered "#". The manuscript closes with a centered "END".
//
// # Variants
//
// Options select the font, anonymity (no author, byline or contact details)
// and classic style, which shows italic runs as underlined text.
//
// # Container
//
// The package writes the minimum set of parts Word and LibreOffice need:
//
//	[Content_Types].xml
//	_rels/.rels
//	docProps/core.xml
//	word/document.xml
//	word/styles.xml
//	word/settings.xml
//	word/header1.xml   running header
//	word/header2.xml   empty first-page header
//	word/_rels/document.xml.rels
package docx
