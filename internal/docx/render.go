package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/gorewood/md2ms/internal/manuscript"
)

// DefaultFontSize is the body font size in points.
const DefaultFontSize = 12

// Options selects a manuscript variant.
type Options struct {
	Font      string
	FontSize  int // points; zero means DefaultFontSize
	Anonymous bool
	Classic   bool
	Contact   manuscript.Contact
}

// Validate checks that the options describe a renderable variant.
func (o Options) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Font, validation.Required),
		validation.Field(&o.FontSize, validation.Min(0), validation.Max(72)),
	)
}

func (o Options) halfPoints() int {
	if o.FontSize == 0 {
		return 2 * DefaultFontSize
	}
	return 2 * o.FontSize
}

// Build renders m and returns the .docx bytes.
func Build(m *manuscript.Manuscript, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, m, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write renders m as a .docx container to w.
func Write(w io.Writer, m *manuscript.Manuscript, opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid render options: %w", err)
	}

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"docProps/core.xml", coreXML(m, opts)},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML(opts)},
		{"word/settings.xml", settingsXML},
		{"word/header1.xml", headerXML(runningHeader(m, opts), true)},
		{"word/header2.xml", headerXML("", false)},
		{"word/document.xml", documentXML(m, opts)},
	}

	zw := zip.NewWriter(w)
	for _, part := range parts {
		fw, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", part.name, err)
		}
		if _, err := io.WriteString(fw, part.content); err != nil {
			return fmt.Errorf("failed to write %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish docx: %w", err)
	}
	return nil
}

// runningHeader returns the header text that precedes the page number.
func runningHeader(m *manuscript.Manuscript, opts Options) string {
	if opts.Anonymous || m.ShortAuthor == "" {
		return m.ShortTitle + " / "
	}
	return m.ShortAuthor + " / " + m.ShortTitle + " / "
}

func documentXML(m *manuscript.Manuscript, opts Options) string {
	w := &writer{classic: opts.Classic}
	w.raw(xmlHeader)
	w.raw(`<w:document xmlns:w="` + nsMain + `" xmlns:r="` + nsRel + `"><w:body>`)

	writeCover(w, m, opts)
	for _, block := range m.Blocks {
		writeBlock(w, block)
	}
	w.plain(paraProps{align: alignCenter, spaceAfter: true}, "END")

	w.raw(sectionProps)
	w.raw("</w:body></w:document>")
	return w.String()
}

func writeCover(w *writer, m *manuscript.Manuscript, opts Options) {
	half := strconv.Itoa(textWidth / 2)
	w.raw(`<w:tbl><w:tblPr><w:tblW w:w="` + strconv.Itoa(textWidth) + `" w:type="dxa"/>`)
	w.raw(`<w:tblBorders>`)
	for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		w.raw(`<w:` + side + ` w:val="nil"/>`)
	}
	w.raw(`</w:tblBorders></w:tblPr>`)
	w.raw(`<w:tblGrid><w:gridCol w:w="` + half + `"/><w:gridCol w:w="` + half + `"/></w:tblGrid><w:tr>`)

	w.raw(`<w:tc><w:tcPr><w:tcW w:w="` + half + `" w:type="dxa"/></w:tcPr>`)
	var lines []string
	if !opts.Anonymous {
		lines = opts.Contact.Lines()
	}
	if len(lines) == 0 {
		w.blank()
	}
	for _, line := range lines {
		w.plain(paraProps{}, line)
	}
	w.raw(`</w:tc>`)

	w.raw(`<w:tc><w:tcPr><w:tcW w:w="` + half + `" w:type="dxa"/></w:tcPr>`)
	w.plain(paraProps{align: alignRight}, wordCountLabel(m.RoundedWords))
	w.raw(`</w:tc></w:tr></w:tbl>`)

	w.blanks(titlePadding)
	w.plain(paraProps{align: alignCenter, spaceAfter: true}, m.Title)
	if !opts.Anonymous && m.Author != "" {
		w.plain(paraProps{align: alignCenter}, "by "+m.Author)
	}
	if warnings := m.Metadata.ContentWarnings; len(warnings) > 0 {
		w.plain(paraProps{align: alignCenter}, "Content warnings: "+strings.Join(warnings, ", "))
	}
	w.blanks(bylinePadding)
}

func writeBlock(w *writer, block manuscript.Block) {
	switch block.Kind {
	case manuscript.KindSectionBreak:
		w.plain(paraProps{align: alignCenter, pageBreakBefore: true, spaceAfter: true}, "")
		w.blanks(sectionPadding)
		w.plain(paraProps{align: alignCenter, spaceAfter: true}, block.Heading)
	case manuscript.KindSceneSeparator:
		w.plain(paraProps{align: alignCenter, spaceAfter: true}, manuscript.SceneMarker)
	default:
		w.paragraph(paraProps{body: true}, block.Runs)
	}
}

func wordCountLabel(words uint) string {
	if words == 1 {
		return "1 word"
	}
	return strconv.FormatUint(uint64(words), 10) + " words"
}

func headerXML(text string, pageNumber bool) string {
	w := &writer{}
	w.raw(xmlHeader)
	w.raw(`<w:hdr xmlns:w="` + nsMain + `" xmlns:r="` + nsRel + `">`)
	if !pageNumber {
		w.blank()
	} else {
		w.raw("<w:p>")
		w.paraProps(paraProps{align: alignRight})
		w.run(manuscript.Run{Text: text})
		w.pageField()
		w.raw("</w:p>")
	}
	w.raw("</w:hdr>")
	return w.String()
}

func stylesXML(opts Options) string {
	w := &writer{}
	size := strconv.Itoa(opts.halfPoints())
	w.raw(xmlHeader)
	w.raw(`<w:styles xmlns:w="` + nsMain + `"><w:docDefaults><w:rPrDefault><w:rPr>`)
	w.raw(`<w:rFonts w:ascii="`)
	w.text(opts.Font)
	w.raw(`" w:hAnsi="`)
	w.text(opts.Font)
	w.raw(`" w:cs="`)
	w.text(opts.Font)
	w.raw(`"/>`)
	w.raw(`<w:sz w:val="` + size + `"/><w:szCs w:val="` + size + `"/>`)
	w.raw(`<w:lang w:val="en-US"/></w:rPr></w:rPrDefault>`)
	w.raw(`<w:pPrDefault><w:pPr><w:spacing w:after="0" w:line="240" w:lineRule="auto"/></w:pPr></w:pPrDefault>`)
	w.raw(`</w:docDefaults>`)
	w.raw(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>`)
	w.raw(`</w:styles>`)
	return w.String()
}

// coreXML writes the package properties. The identifier is derived from the
// corpus fingerprint and variant so unchanged sources produce the same id.
func coreXML(m *manuscript.Manuscript, opts Options) string {
	seed := fmt.Sprintf("md2ms:%s:%s:%t:%t", m.Fingerprint, opts.Font, opts.Anonymous, opts.Classic)
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(seed))

	w := &writer{}
	w.raw(xmlHeader)
	w.raw(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"`)
	w.raw(` xmlns:dc="http://purl.org/dc/elements/1.1/">`)
	w.raw("<dc:title>")
	w.text(m.Title)
	w.raw("</dc:title>")
	if !opts.Anonymous && m.Author != "" {
		w.raw("<dc:creator>")
		w.text(m.Author)
		w.raw("</dc:creator>")
	}
	w.raw("<dc:identifier>urn:uuid:" + id.String() + "</dc:identifier>")
	w.raw("</cp:coreProperties>")
	return w.String()
}
