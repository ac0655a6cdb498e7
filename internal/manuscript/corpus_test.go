package manuscript

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeTree creates files under root. Keys are slash-separated relative paths.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", rel, err)
		}
		if err := os.WriteFile(full, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
}

func TestLoad_Directory(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"metadata.md":               "---\ntitle: Tide\ninclude:\n  - Act 1/scene1.md\n---\n",
		"Act 1/scene1.md":           "First scene.",
		"Act 1/Chapter 1/scene2.md": "Second scene.",
		"notes.txt":                 "not markdown",
		"UPPER.MD":                  "wrong case extension",
		".obsidian/workspace.md":    "editor state",
	})
	if err := os.WriteFile(filepath.Join(root, "bad.md"), []byte{0xff, 0xfe, 0xfd}, 0o600); err != nil {
		t.Fatal(err)
	}

	corpus, stats, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{"Act 1/Chapter 1/scene2.md", "Act 1/scene1.md", "metadata.md"}
	got := corpus.Keys()
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if corpus["Act 1/scene1.md"].Content != "First scene." {
		t.Errorf("scene1 content = %q", corpus["Act 1/scene1.md"].Content)
	}

	if stats.Parsed != 3 {
		t.Errorf("Parsed = %d, want 3", stats.Parsed)
	}
	if stats.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", stats.Skipped)
	}
	if stats.Ignored != 3 {
		t.Errorf("Ignored = %d, want 3", stats.Ignored)
	}

	kinds := map[string]DiagnosticKind{}
	for _, d := range stats.Diagnostics {
		kinds[d.Path] = d.Kind
	}
	if kinds["bad.md"] != DiagnosticParseSkipped {
		t.Errorf("bad.md diagnostic = %q, want %q", kinds["bad.md"], DiagnosticParseSkipped)
	}
	if kinds[".obsidian"] != DiagnosticIgnored {
		t.Errorf(".obsidian diagnostic = %q, want %q", kinds[".obsidian"], DiagnosticIgnored)
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestLoad_SingleFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"story.md": "---\ntitle: Alone\n---\nOne line."})

	corpus, stats, err := Load(filepath.Join(root, "story.md"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(corpus) != 1 {
		t.Fatalf("len(corpus) = %d, want 1", len(corpus))
	}
	doc, ok := corpus["story.md"]
	if !ok {
		t.Fatalf("single file should be keyed by base name, got %v", corpus.Keys())
	}
	if doc.Content != "One line." {
		t.Errorf("content = %q", doc.Content)
	}
	if stats.Parsed != 1 {
		t.Errorf("Parsed = %d, want 1", stats.Parsed)
	}
}

func TestLoad_SingleNonMarkdownFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"story.txt": "plain"})

	corpus, stats, err := Load(filepath.Join(root, "story.txt"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(corpus) != 0 {
		t.Errorf("len(corpus) = %d, want 0", len(corpus))
	}
	if stats.Ignored != 1 {
		t.Errorf("Ignored = %d, want 1", stats.Ignored)
	}
}

func TestCorpus_Fingerprint(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.md":     "alpha",
		"sub/b.md": "beta",
	})

	first, _, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	if first.Fingerprint() != second.Fingerprint() {
		t.Error("unchanged tree should keep its fingerprint")
	}

	writeTree(t, root, map[string]string{"sub/b.md": "beta, revised"})
	third, _, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	if first.Fingerprint() == third.Fingerprint() {
		t.Error("edited tree should change its fingerprint")
	}
}
