package manuscript

import (
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"
)

// Metadata is the front matter recognized on a manuscript fragment.
// Every field is optional; a nil pointer (or nil slice) means the key was absent,
// which is distinct from a key present with an empty value.
type Metadata struct {
	Title           *string  `yaml:"title"            json:"title,omitempty"`
	Author          *string  `yaml:"author"           json:"author,omitempty"`
	ShortTitle      *string  `yaml:"short_title"      json:"short_title,omitempty"`
	ShortAuthor     *string  `yaml:"short_author"     json:"short_author,omitempty"`
	Heading         *string  `yaml:"heading"          json:"heading,omitempty"`
	ContentWarnings []string `yaml:"content_warnings" json:"content_warnings,omitempty"`
	Include         []string `yaml:"include"          json:"include,omitempty"`
}

// IsEmpty reports whether no metadata field was present.
func (m Metadata) IsEmpty() bool {
	return m.Title == nil && m.Author == nil &&
		m.ShortTitle == nil && m.ShortAuthor == nil &&
		m.Heading == nil && m.ContentWarnings == nil && m.Include == nil
}

// HasManifest reports whether the document declares an include list.
// An explicitly empty list still counts as a manifest.
func (m Metadata) HasManifest() bool {
	return m.Include != nil
}

// Document is one parsed Markdown fragment.
type Document struct {
	Metadata Metadata `json:"metadata"`
	Content  string   `json:"content"`
	// Digest is the hex BLAKE3 hash of the raw file text.
	Digest string `json:"digest"`
}

// yamlFormat decodes "---" delimited front matter with yaml.v3 so absent keys stay nil.
var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// ParseDocument splits front matter from body text. Missing or malformed
// front matter is not an error: the whole input becomes the content and the
// metadata is left empty.
func ParseDocument(raw string) Document {
	var meta Metadata
	content := raw

	body, err := frontmatter.Parse(strings.NewReader(raw), &meta, yamlFormat)
	if err != nil {
		meta = Metadata{}
	} else {
		content = string(body)
	}

	return Document{
		Metadata: meta,
		Content:  CleanContent(content),
		Digest:   digest(raw),
	}
}

var (
	commentPattern = regexp.MustCompile(`(?s)%%\s+.*?\s+%%`)
	spacePattern   = regexp.MustCompile(`[ ]+`)
	linkPattern    = regexp.MustCompile(`\[([^\[\]]+)\]\(([^)]+)\)`)
)

// CleanContent strips %% comments, collapses runs of spaces and replaces
// [label](target) links with their label. Each transform runs until the text
// stops changing, so CleanContent(CleanContent(s)) == CleanContent(s).
func CleanContent(s string) string {
	for {
		next := cleanOnce(s)
		if next == s {
			return s
		}
		s = next
	}
}

func cleanOnce(s string) string {
	s = strings.TrimSpace(commentPattern.ReplaceAllString(s, ""))
	s = spacePattern.ReplaceAllString(s, " ")
	return linkPattern.ReplaceAllString(s, "$1")
}

func digest(raw string) string {
	sum := blake3.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
