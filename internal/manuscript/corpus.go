package manuscript

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/zeebo/blake3"
)

// MarkdownExt is the only extension treated as Markdown (case-sensitive).
const MarkdownExt = ".md"

// MetadataFile is the conventional root file holding manuscript-level metadata.
const MetadataFile = "metadata.md"

// Corpus maps root-relative, slash-separated paths to parsed documents.
type Corpus map[string]Document

// Keys returns the corpus paths in lexical order.
func (c Corpus) Keys() []string {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Fingerprint hashes every path and document digest in key order. Two corpora
// loaded from an unchanged tree share a fingerprint.
func (c Corpus) Fingerprint() string {
	hasher := blake3.New()
	for _, key := range c.Keys() {
		_, _ = hasher.Write([]byte(key))
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.Write([]byte(c[key].Digest))
		_, _ = hasher.Write([]byte{0})
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

// DiagnosticKind classifies a skipped filesystem entry.
type DiagnosticKind string

// Kinds of loader diagnostics.
const (
	// DiagnosticIgnored marks entries that are not Markdown files.
	DiagnosticIgnored DiagnosticKind = "ignored"
	// DiagnosticParseSkipped marks Markdown files that could not be read or decoded.
	DiagnosticParseSkipped DiagnosticKind = "parse_skipped"
)

// Diagnostic records one entry the loader left out of the corpus.
type Diagnostic struct {
	Kind   DiagnosticKind `json:"kind"`
	Path   string         `json:"path"`
	Reason string         `json:"reason"`
}

// LoadStats summarizes a corpus load.
type LoadStats struct {
	Parsed      int          `json:"parsed"`
	Skipped     int          `json:"skipped"`
	Ignored     int          `json:"ignored"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

func (s *LoadStats) merge(other *LoadStats) {
	s.Parsed += other.Parsed
	s.Skipped += other.Skipped
	s.Ignored += other.Ignored
	s.Diagnostics = append(s.Diagnostics, other.Diagnostics...)
}

func (s *LoadStats) skip(rel, reason string) {
	s.Skipped++
	s.Diagnostics = append(s.Diagnostics, Diagnostic{Kind: DiagnosticParseSkipped, Path: rel, Reason: reason})
}

func (s *LoadStats) ignore(rel, reason string) {
	s.Ignored++
	s.Diagnostics = append(s.Diagnostics, Diagnostic{Kind: DiagnosticIgnored, Path: rel, Reason: reason})
}

// Load parses every Markdown file at root. A file root yields a single entry
// keyed by its base name; a directory root is walked recursively and keys are
// paths relative to it. Unreadable files and non-Markdown entries are skipped
// and reported in the returned stats. Returns ErrNotFound if root does not exist.
func Load(root string) (Corpus, *LoadStats, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, root)
		}
		return nil, nil, fmt.Errorf("stat %s: %w", root, err)
	}

	if !info.IsDir() {
		corpus := Corpus{}
		stats := &LoadStats{}
		name := filepath.Base(root)
		if !isMarkdown(name) {
			stats.ignore(name, "not a Markdown file")
			return corpus, stats, nil
		}
		if doc, reason := readDocument(root); reason != "" {
			stats.skip(name, reason)
		} else {
			corpus[name] = doc
			stats.Parsed++
		}
		return corpus, stats, nil
	}

	corpus, stats, err := loadDir(root, "")
	if err != nil {
		return nil, nil, err
	}
	return corpus, stats, nil
}

// loadDir loads the directory at root/rel and returns a map owned by the
// caller. Subdirectory results are merged in; keys cannot collide because
// they are full relative paths.
func loadDir(root, rel string) (Corpus, *LoadStats, error) {
	corpus := Corpus{}
	stats := &LoadStats{}

	dir := filepath.Join(root, filepath.FromSlash(rel))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if rel == "" {
			return nil, nil, fmt.Errorf("reading directory %s: %w", dir, err)
		}
		stats.skip(rel, err.Error())
		return corpus, stats, nil
	}

	for _, entry := range entries {
		name := entry.Name()
		entryRel := path.Join(rel, name)
		full := filepath.Join(dir, name)

		isDir, statErr := resolveDir(entry, full)
		if statErr != nil {
			stats.skip(entryRel, statErr.Error())
			continue
		}

		if isDir {
			if strings.HasPrefix(name, ".") {
				stats.ignore(entryRel, "hidden directory")
				continue
			}
			sub, subStats, err := loadDir(root, entryRel)
			if err != nil {
				return nil, nil, err
			}
			for key, doc := range sub {
				corpus[key] = doc
			}
			stats.merge(subStats)
			continue
		}

		if !isMarkdown(name) {
			stats.ignore(entryRel, "not a Markdown file")
			continue
		}

		doc, reason := readDocument(full)
		if reason != "" {
			stats.skip(entryRel, reason)
			continue
		}
		corpus[entryRel] = doc
		stats.Parsed++
	}

	return corpus, stats, nil
}

// resolveDir reports whether an entry is a directory, following symlinks.
func resolveDir(entry os.DirEntry, full string) (bool, error) {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.IsDir(), nil
	}
	info, err := os.Stat(full)
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, errors.New("symlinked directories are not followed")
	}
	return false, nil
}

// readDocument reads and parses one file. A non-empty reason means the file
// should be skipped.
func readDocument(full string) (Document, string) {
	data, err := os.ReadFile(full)
	if err != nil {
		return Document{}, err.Error()
	}
	if !utf8.Valid(data) {
		return Document{}, "file is not valid UTF-8"
	}
	return ParseDocument(string(data)), ""
}

func isMarkdown(name string) bool {
	return filepath.Ext(name) == MarkdownExt
}
