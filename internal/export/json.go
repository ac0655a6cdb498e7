package export

import (
	"github.com/gorewood/md2ms/internal/manuscript"
	"github.com/gorewood/md2ms/internal/output"
)

// SchemaVersion identifies the JSON rendering of a manuscript.
const SchemaVersion = "md2ms.manuscript/v1"

// Document is the JSON shape of a compiled manuscript.
type Document struct {
	Schema          string             `json:"schema"`
	Root            string             `json:"root"`
	Title           string             `json:"title"`
	Author          string             `json:"author,omitempty"`
	ShortTitle      string             `json:"short_title"`
	ShortAuthor     string             `json:"short_author,omitempty"`
	ContentWarnings []string           `json:"content_warnings,omitempty"`
	Words           int                `json:"words"`
	RoundedWords    uint               `json:"rounded_words"`
	Fingerprint     string             `json:"fingerprint"`
	Blocks          []manuscript.Block `json:"blocks"`
}

// NewDocument converts a manuscript to its JSON shape.
func NewDocument(m *manuscript.Manuscript) Document {
	blocks := m.Blocks
	if blocks == nil {
		blocks = []manuscript.Block{}
	}
	return Document{
		Schema:          SchemaVersion,
		Root:            m.Root,
		Title:           m.Title,
		Author:          m.Author,
		ShortTitle:      m.ShortTitle,
		ShortAuthor:     m.ShortAuthor,
		ContentWarnings: m.Metadata.ContentWarnings,
		Words:           m.Words,
		RoundedWords:    m.RoundedWords,
		Fingerprint:     m.Fingerprint,
		Blocks:          blocks,
	}
}

// FormatJSON outputs the manuscript as a JSON document to the printer.
func FormatJSON(printer *output.Printer, m *manuscript.Manuscript) error {
	return printer.WriteJSON(NewDocument(m))
}
