package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/md2ms/internal/manuscript"
	"github.com/gorewood/md2ms/internal/output"
)

func TestCompileCommand_WritesVariants(t *testing.T) {
	dir := isolate(t)
	root := makeManuscript(t, dir)
	outDir := filepath.Join(dir, "out")

	stdout, _, err := execute(t, "compile", root, "-o", outDir, "--font", "Courier New", "--anonymous")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, name := range []string{"Tide Tables - Courier New.docx", "Tide Tables - Courier New - Anonymous.docx"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
	if !strings.Contains(stdout, "Wrote 2 manuscripts to "+outDir) {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestCompileCommand_JSONReportsFiles(t *testing.T) {
	dir := isolate(t)
	root := makeManuscript(t, dir)
	outDir := filepath.Join(dir, "out")

	stdout, _, err := execute(t, "compile", root, "-o", outDir,
		"--font", "Courier New", "--font", "Times New Roman", "--classic", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result struct {
		OutputDir string `json:"output_dir"`
		Files     []struct {
			Path string `json:"path"`
		} `json:"files"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output should be JSON: %v\n%s", err, stdout)
	}
	if result.OutputDir != outDir {
		t.Errorf("output_dir = %q, want %q", result.OutputDir, outDir)
	}
	if len(result.Files) != 4 {
		t.Errorf("len(files) = %d, want 4", len(result.Files))
	}
}

func TestCompileCommand_ConfigFile(t *testing.T) {
	dir := isolate(t)
	root := makeManuscript(t, dir)
	outDir := filepath.Join(dir, "from-config")
	cfgFile := filepath.Join(dir, "md2ms.yaml")
	content := "output_dir: " + outDir + "\nfonts:\n  - Garamond\n"
	if err := os.WriteFile(cfgFile, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, _, err := execute(t, "compile", root, "--config", cfgFile); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "Tide Tables - Garamond.docx")); err != nil {
		t.Errorf("config output_dir and fonts were not used: %v", err)
	}
}

func TestCompileCommand_TextFormat(t *testing.T) {
	dir := isolate(t)
	root := makeManuscript(t, dir)

	stdout, _, err := execute(t, "compile", root, "--format", "txt")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "Tide Tables\nby Ada Marsh\n\n" +
		"The water rose.\nIt kept rising.\n" +
		"\nEbb\n\n" +
		"Then it fell quietly away.\n" +
		"\nEND\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestCompileCommand_JSONFormat(t *testing.T) {
	dir := isolate(t)
	root := makeManuscript(t, dir)

	stdout, _, err := execute(t, "compile", root, "--format", "json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var doc struct {
		Title  string `json:"title"`
		Words  int    `json:"words"`
		Blocks []any  `json:"blocks"`
	}
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("output should be JSON: %v\n%s", err, stdout)
	}
	if doc.Title != "Tide Tables" || doc.Words != 12 || len(doc.Blocks) != 4 {
		t.Errorf("doc = %+v", doc)
	}
}

func TestCompileCommand_WordCount(t *testing.T) {
	dir := isolate(t)
	root := makeManuscript(t, dir)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"rounded", []string{"--word-count"}, "12\n"},
		{"exact", []string{"--word-count", "--exact"}, "12\n12\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, append([]string{"compile", root}, tt.args...)...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if stdout != tt.want {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestCompileCommand_WordCountRoundsLongManuscripts(t *testing.T) {
	dir := isolate(t)
	root := filepath.Join(dir, "long")
	writeTree(t, root, map[string]string{
		"metadata.md": "---\ntitle: Long Haul\ninclude: [body.md]\n---\n",
		"body.md":     strings.Repeat("word ", 150),
	})

	stdout, _, err := execute(t, "compile", root, "--word-count", "--exact")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stdout != "200\n150\n" {
		t.Errorf("stdout = %q, want %q", stdout, "200\n150\n")
	}
}

func TestCompileCommand_WordCountJSON(t *testing.T) {
	dir := isolate(t)
	root := makeManuscript(t, dir)

	stdout, _, err := execute(t, "compile", root, "--word-count", "--exact", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result map[string]float64
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output should be JSON: %v\n%s", err, stdout)
	}
	if result["words"] != 12 || result["exact"] != 12 {
		t.Errorf("result = %v", result)
	}
}

func TestCompileCommand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		args     func(root string) []string
		wantCode int
	}{
		{
			name:     "unknown format",
			files:    map[string]string{"a.md": "Text."},
			args:     func(root string) []string { return []string{"compile", root, "--format", "pdf"} },
			wantCode: output.ExitUserError,
		},
		{
			name:     "exact without word count",
			files:    map[string]string{"a.md": "Text."},
			args:     func(root string) []string { return []string{"compile", root, "--exact"} },
			wantCode: output.ExitUserError,
		},
		{
			name: "missing root",
			args: func(root string) []string {
				return []string{"compile", filepath.Join(root, "missing"), "--format", "txt"}
			},
			wantCode: output.ExitUserError,
		},
		{
			name:     "nested manifest",
			files:    map[string]string{"metadata.md": "---\ninclude: [part.md]\n---\n", "part.md": "---\ninclude: [a.md]\n---\n", "a.md": "Text."},
			args:     func(root string) []string { return []string{"compile", root, "--format", "txt"} },
			wantCode: output.ExitUserError,
		},
		{
			name:     "ambiguous root",
			files:    map[string]string{"a.md": "---\ninclude: [c.md]\n---\n", "b.md": "---\ninclude: [c.md]\n---\n", "c.md": "Text."},
			args:     func(root string) []string { return []string{"compile", root, "--format", "txt"} },
			wantCode: output.ExitConflict,
		},
		{
			name:     "invalid font size",
			files:    map[string]string{"a.md": "Text."},
			args:     func(root string) []string { return []string{"compile", root, "--font-size", "300"} },
			wantCode: output.ExitUserError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			root := filepath.Join(dir, "ms")
			writeTree(t, root, tt.files)

			_, _, err := execute(t, tt.args(root)...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if code := output.GetExitCode(err); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (err = %v)", code, tt.wantCode, err)
			}
		})
	}
}

func TestCompileCommand_MissingIncludeJSON(t *testing.T) {
	dir := isolate(t)
	root := filepath.Join(dir, "ms")
	writeTree(t, root, map[string]string{"metadata.md": "---\ninclude: [ghost.md]\n---\n"})

	stdout, _, err := execute(t, "compile", root, "--format", "txt", "--json")

	var notFound *manuscript.FileNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want FileNotFoundError", err)
	}
	var result struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output should be JSON: %v\n%s", err, stdout)
	}
	if result.Code != output.ExitUserError || !strings.Contains(result.Error, "ghost.md") {
		t.Errorf("result = %+v", result)
	}
}
