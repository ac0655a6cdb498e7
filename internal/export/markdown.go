package export

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/md2ms/internal/manuscript"
)

// frontMatter is the metadata carried by a flattened Markdown document.
type frontMatter struct {
	Title           string   `yaml:"title"`
	Author          string   `yaml:"author,omitempty"`
	ShortTitle      string   `yaml:"short_title,omitempty"`
	ShortAuthor     string   `yaml:"short_author,omitempty"`
	ContentWarnings []string `yaml:"content_warnings,omitempty"`
	Words           uint     `yaml:"words"`
}

// FormatMarkdown flattens the manuscript into a single Markdown document
// with YAML front matter. Section headings become level-two headings and
// run styles are written back as emphasis, strong and strikethrough markup.
func FormatMarkdown(m *manuscript.Manuscript) string {
	var builder strings.Builder

	writeFrontmatter(&builder, m)
	for _, block := range m.Blocks {
		switch block.Kind {
		case manuscript.KindSectionBreak:
			builder.WriteString("## " + block.Heading + "\n\n")
		case manuscript.KindSceneSeparator:
			builder.WriteString(manuscript.SceneMarker + "\n\n")
		default:
			writeRuns(&builder, block.Runs)
			builder.WriteString("\n\n")
		}
	}

	return strings.TrimRight(builder.String(), "\n") + "\n"
}

func writeFrontmatter(builder *strings.Builder, m *manuscript.Manuscript) {
	fm := frontMatter{
		Title:           m.Title,
		Author:          m.Author,
		ShortTitle:      m.ShortTitle,
		ShortAuthor:     m.ShortAuthor,
		ContentWarnings: m.Metadata.ContentWarnings,
		Words:           m.RoundedWords,
	}
	data, err := yaml.Marshal(fm)
	if err != nil {
		return
	}

	builder.WriteString("---\n")
	builder.Write(data)
	builder.WriteString("---\n\n")
}

func writeRuns(builder *strings.Builder, runs []manuscript.Run) {
	for _, run := range runs {
		if run.Text == "" {
			continue
		}
		marker := ""
		switch {
		case run.Bold:
			marker = "**"
		case run.Italic:
			marker = "*"
		case run.Strikethrough:
			marker = "~~"
		}
		builder.WriteString(marker + run.Text + marker)
	}
}
