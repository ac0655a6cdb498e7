package docx

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/gorewood/md2ms/internal/manuscript"
)

// Page geometry in twentieths of a point (dxa). Letter paper, one inch margins.
const (
	pageWidth    = 12240
	pageHeight   = 15840
	margin       = 1440
	headerOffset = 720
	textWidth    = pageWidth - 2*margin
)

// Paragraph geometry.
const (
	doubleSpacing   = 480
	firstLineIndent = 357
	afterLines      = 100
)

// Vertical padding, in blank paragraphs.
const (
	sectionPadding = 23
	titlePadding   = 10
	bylinePadding  = 2
)

type alignment string

const (
	alignLeft   alignment = ""
	alignCenter alignment = "center"
	alignRight  alignment = "right"
)

// paraProps are the paragraph properties the renderer uses.
type paraProps struct {
	align           alignment
	pageBreakBefore bool
	body            bool
	spaceAfter      bool
}

// writer accumulates WordprocessingML markup.
type writer struct {
	sb      strings.Builder
	classic bool
}

func (w *writer) raw(s string) {
	w.sb.WriteString(s)
}

func (w *writer) text(s string) {
	_ = xml.EscapeText(&w.sb, []byte(s))
}

func (w *writer) String() string {
	return w.sb.String()
}

// blank writes an empty paragraph.
func (w *writer) blank() {
	w.raw("<w:p/>")
}

func (w *writer) blanks(n int) {
	for range n {
		w.blank()
	}
}

// plain writes a paragraph holding one unstyled run.
func (w *writer) plain(props paraProps, text string) {
	w.paragraph(props, []manuscript.Run{{Text: text}})
}

func (w *writer) paragraph(props paraProps, runs []manuscript.Run) {
	w.raw("<w:p>")
	w.paraProps(props)
	for _, run := range runs {
		w.run(run)
	}
	w.raw("</w:p>")
}

func (w *writer) paraProps(props paraProps) {
	if props == (paraProps{}) {
		return
	}
	w.raw("<w:pPr>")
	if props.pageBreakBefore {
		w.raw("<w:pageBreakBefore/>")
	}
	switch {
	case props.body:
		w.raw(`<w:spacing w:line="` + strconv.Itoa(doubleSpacing) + `" w:lineRule="auto"/>`)
		w.raw(`<w:ind w:firstLine="` + strconv.Itoa(firstLineIndent) + `"/>`)
	case props.spaceAfter:
		w.raw(`<w:spacing w:afterLines="` + strconv.Itoa(afterLines) + `"/>`)
	}
	if props.align != alignLeft {
		w.raw(`<w:jc w:val="` + string(props.align) + `"/>`)
	}
	w.raw("</w:pPr>")
}

// run writes one text run. Runs with no text are dropped.
func (w *writer) run(run manuscript.Run) {
	if run.Text == "" {
		return
	}
	w.raw("<w:r>")
	switch {
	case run.Bold:
		w.raw("<w:rPr><w:b/></w:rPr>")
	case run.Italic && w.classic:
		w.raw(`<w:rPr><w:u w:val="single"/></w:rPr>`)
	case run.Italic:
		w.raw("<w:rPr><w:i/></w:rPr>")
	case run.Strikethrough:
		w.raw("<w:rPr><w:strike/></w:rPr>")
	}
	w.raw(`<w:t xml:space="preserve">`)
	w.text(run.Text)
	w.raw("</w:t></w:r>")
}

// pageField writes a PAGE field showing the current page number.
func (w *writer) pageField() {
	w.raw(`<w:r><w:fldChar w:fldCharType="begin"/></w:r>`)
	w.raw(`<w:r><w:instrText xml:space="preserve"> PAGE </w:instrText></w:r>`)
	w.raw(`<w:r><w:fldChar w:fldCharType="separate"/></w:r>`)
	w.raw(`<w:r><w:t>1</w:t></w:r>`)
	w.raw(`<w:r><w:fldChar w:fldCharType="end"/></w:r>`)
}
