package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/md2ms/internal/output"
)

func TestOutlineCommand_JSON(t *testing.T) {
	dir := isolate(t)
	root := makeManuscript(t, dir)

	stdout, _, err := execute(t, "outline", root, "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result struct {
		Root      string `json:"root"`
		Title     string `json:"title"`
		Author    string `json:"author"`
		Words     int    `json:"words"`
		Fragments []struct {
			Path       string `json:"path"`
			Heading    string `json:"heading"`
			Paragraphs int    `json:"paragraphs"`
			Words      int    `json:"words"`
		} `json:"fragments"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output should be JSON: %v\n%s", err, stdout)
	}

	if result.Root != "metadata.md" || result.Title != "Tide Tables" || result.Author != "Ada Marsh" {
		t.Errorf("root, title, author = %q, %q, %q", result.Root, result.Title, result.Author)
	}
	if len(result.Fragments) != 2 {
		t.Fatalf("len(fragments) = %d, want 2", len(result.Fragments))
	}
	if result.Fragments[1].Heading != "Ebb" || result.Fragments[1].Paragraphs != 1 {
		t.Errorf("two.md = %+v", result.Fragments[1])
	}
	// The heading itself is not part of the fragment content.
	if result.Words != 11 {
		t.Errorf("words = %d, want 11", result.Words)
	}
}

func TestOutlineCommand_Human(t *testing.T) {
	dir := isolate(t)
	root := makeManuscript(t, dir)

	stdout, _, err := execute(t, "outline", root)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"Root: metadata.md", "Title: Tide Tables", "Fragments", "PATH", "one.md", "Ebb"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestOutlineCommand_NoManuscript(t *testing.T) {
	dir := isolate(t)
	root := filepath.Join(dir, "loose")
	writeTree(t, root, map[string]string{"a.md": "One.", "b.md": "Two."})

	_, _, err := execute(t, "outline", root)
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d (err = %v)", code, output.ExitUserError, err)
	}
}
