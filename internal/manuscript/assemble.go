package manuscript

import (
	"path"
	"strings"
)

// BlockKind tags a Block variant.
type BlockKind string

// Block variants, in the order a renderer is expected to handle them.
const (
	// KindSectionBreak starts a new page with a centered heading.
	KindSectionBreak BlockKind = "section_break"
	// KindSceneSeparator is a centered marker between scenes.
	KindSceneSeparator BlockKind = "scene_separator"
	// KindParagraph is an indented, double-spaced body paragraph.
	KindParagraph BlockKind = "paragraph"
)

// SceneMarker is the glyph shown for a scene separator, and the literal
// source line that requests one.
const SceneMarker = "#"

// Block is one structural unit of the assembled manuscript.
// Heading is set only for section breaks; Runs only for paragraphs.
type Block struct {
	Kind    BlockKind `json:"kind"`
	Heading string    `json:"heading,omitempty"`
	Runs    []Run     `json:"runs,omitempty"`
}

// Text returns the plain text carried by the block.
func (b Block) Text() string {
	switch b.Kind {
	case KindSectionBreak:
		return b.Heading
	case KindSceneSeparator:
		return SceneMarker
	default:
		var sb strings.Builder
		for _, run := range b.Runs {
			sb.WriteString(run.Text)
		}
		return sb.String()
	}
}

// SectionBreak builds a section break carrying heading.
func SectionBreak(heading string) Block {
	return Block{Kind: KindSectionBreak, Heading: heading}
}

// SceneSeparator builds a scene separator.
func SceneSeparator() Block {
	return Block{Kind: KindSceneSeparator}
}

// Paragraph builds a paragraph from runs.
func Paragraph(runs []Run) Block {
	return Block{Kind: KindParagraph, Runs: runs}
}

// ContentBlocks turns document content into blocks, one per non-blank line.
// A line holding only the scene marker becomes a scene separator.
func ContentBlocks(content string) []Block {
	var blocks []Block
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == SceneMarker {
			blocks = append(blocks, SceneSeparator())
			continue
		}
		blocks = append(blocks, Paragraph(Tokenize(strings.TrimRight(line, "\r"))))
	}
	return blocks
}

// Assemble flattens root into blocks. A root without a manifest is a
// standalone document. Otherwise each included path is resolved against the
// corpus in manifest order: a heading opens a section break, and consecutive
// content-bearing fragments without a heading are divided by a scene
// separator. Fragments without paragraphs neither receive nor arm one.
// Explicit markers and automatic separators share one rule: a separator is
// never doubled and never touches a section break.
// A dangling include aborts with *FileNotFoundError and no blocks.
func Assemble(corpus Corpus, root Document) ([]Block, error) {
	if !root.Metadata.HasManifest() {
		return ContentBlocks(root.Content), nil
	}

	var blocks []Block
	armed := false
	for _, include := range root.Metadata.Include {
		doc, ok := corpus.Lookup(include)
		if !ok {
			return nil, &FileNotFoundError{Path: include}
		}
		if doc.Metadata.HasManifest() {
			return nil, &NestedManifestError{Path: include}
		}

		content := ContentBlocks(doc.Content)
		hasText := hasParagraph(content)
		if heading := doc.Metadata.Heading; heading != nil {
			if n := len(blocks); n > 0 && blocks[n-1].Kind == KindSceneSeparator {
				blocks = blocks[:n-1]
			}
			blocks = append(blocks, SectionBreak(*heading))
			armed = false
		} else if armed && hasText {
			blocks = appendSeparator(blocks)
		}

		for _, block := range content {
			if block.Kind == KindSceneSeparator {
				blocks = appendSeparator(blocks)
				continue
			}
			blocks = append(blocks, block)
		}
		if hasText {
			armed = true
		}
	}
	return blocks, nil
}

// appendSeparator adds a scene separator unless blocks is empty or already
// ends in a separator or a section break.
func appendSeparator(blocks []Block) []Block {
	if n := len(blocks); n == 0 || blocks[n-1].Kind != KindParagraph {
		return blocks
	}
	return append(blocks, SceneSeparator())
}

func hasParagraph(blocks []Block) bool {
	for _, b := range blocks {
		if b.Kind == KindParagraph {
			return true
		}
	}
	return false
}

// Lookup finds a document by manifest path. Paths are matched after
// slash-cleaning, so "./a/b.md" and "a//b.md" resolve to "a/b.md".
func (c Corpus) Lookup(include string) (Document, bool) {
	if doc, ok := c[include]; ok {
		return doc, true
	}
	doc, ok := c[normalizeInclude(include)]
	return doc, ok
}

func normalizeInclude(include string) string {
	cleaned := path.Clean(strings.ReplaceAll(strings.TrimSpace(include), "\\", "/"))
	return strings.TrimPrefix(cleaned, "/")
}
