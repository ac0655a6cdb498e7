package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorewood/md2ms/internal/docx"
	"github.com/gorewood/md2ms/internal/manuscript"
	"github.com/gorewood/md2ms/internal/output"
)

// Settings are the rendering inputs shared by every variant.
type Settings struct {
	FontSize int
	Contact  manuscript.Contact
}

// Written describes one file produced by WriteVariants.
type Written struct {
	Variant Variant `json:"variant"`
	Path    string  `json:"path"`
	Words   uint    `json:"rounded_words"`
}

// WriteVariants compiles the corpus once per variant and writes each result
// as a .docx file in dir. The corpus is only read. dir is created after the
// first compile succeeds, so a broken manuscript leaves no trace on disk.
// Compilation errors are returned unchanged; files written before the
// failure are reported alongside it.
func WriteVariants(corpus manuscript.Corpus, dir string, variants []Variant, settings Settings) ([]Written, error) {
	if len(variants) == 0 {
		return nil, output.NewUserError("no output variants: configure at least one font")
	}
	m, err := manuscript.CompileCorpus(corpus)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to create output directory "+dir, err)
	}

	written := make([]Written, 0, len(variants))
	for i, v := range variants {
		if i > 0 {
			if m, err = manuscript.CompileCorpus(corpus); err != nil {
				return written, err
			}
		}

		data, err := docx.Build(m, docx.Options{
			Font:      v.Font,
			FontSize:  settings.FontSize,
			Anonymous: v.Anonymous,
			Classic:   v.Classic,
			Contact:   settings.Contact,
		})
		if err != nil {
			return written, output.NewSystemErrorWithCause("failed to render "+v.FileName(m.Title), err)
		}

		path := filepath.Join(dir, v.FileName(m.Title))
		if err := atomicWrite(path, data); err != nil {
			return written, output.NewSystemErrorWithCause(fmt.Sprintf("failed to write %s", path), err)
		}
		written = append(written, Written{Variant: v, Path: path, Words: m.RoundedWords})
	}
	return written, nil
}

// atomicWrite writes data to path using write-to-temp-then-rename.
// The temp file is created in the same directory as path.
func atomicWrite(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".tmp-*"+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
