package export

import (
	"strings"
	"testing"

	"github.com/gorewood/md2ms/internal/manuscript"
)

func TestFormatMarkdown(t *testing.T) {
	got := FormatMarkdown(testManuscript(t))

	contains := []string{
		"---\ntitle: The Lighthouse\n",
		"author: Jane Q. Writer\n",
		"short_author: Writer\n",
		"words: 12\n",
		"The lamp *turned*.\n\n#\n\nThe ship **did not**.\n\n## Part Two\n\nMorning came ~~late~~.\n",
	}
	for _, s := range contains {
		if !strings.Contains(got, s) {
			t.Errorf("FormatMarkdown() missing %q\n%s", s, got)
		}
	}
	if strings.HasSuffix(got, "\n\n") {
		t.Error("output should end with a single newline")
	}
}

func TestFormatMarkdown_Recompiles(t *testing.T) {
	original := testManuscript(t)
	flat := manuscript.ParseDocument(FormatMarkdown(original))

	if got := flat.Metadata.Title; got == nil || *got != original.Title {
		t.Errorf("title did not survive: %v", got)
	}
	blocks := manuscript.ContentBlocks(flat.Content)
	if manuscript.CountBlockWords(blocks) != original.Words {
		t.Errorf("word count changed: %d -> %d", original.Words, manuscript.CountBlockWords(blocks))
	}
}

func TestFormatText(t *testing.T) {
	got := FormatText(testManuscript(t))
	want := "The Lighthouse\nby Jane Q. Writer\n\n" +
		"The lamp turned.\n#\nThe ship did not.\n" +
		"\nPart Two\n\n" +
		"Morning came late.\n" +
		"\nEND\n"

	if got != want {
		t.Errorf("FormatText() =\n%s\nwant\n%s", got, want)
	}
}
