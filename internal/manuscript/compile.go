package manuscript

import (
	"path"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ResolveRoot picks the document that defines the manuscript: metadata.md
// when present, the only document of a single-file corpus, or the single
// document that declares an include list.
func ResolveRoot(corpus Corpus) (string, Document, error) {
	if doc, ok := corpus[MetadataFile]; ok {
		return MetadataFile, doc, nil
	}

	keys := corpus.Keys()
	if len(keys) == 1 {
		return keys[0], corpus[keys[0]], nil
	}

	var candidates []string
	for _, key := range keys {
		if corpus[key].Metadata.HasManifest() {
			candidates = append(candidates, key)
		}
	}

	switch len(candidates) {
	case 0:
		return "", Document{}, ErrNoManuscript
	case 1:
		return candidates[0], corpus[candidates[0]], nil
	default:
		return "", Document{}, &AmbiguousRootError{Candidates: candidates}
	}
}

// Validate checks list fields for blank entries.
func (m Metadata) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Include, validation.Each(validation.Required)),
		validation.Field(&m.ContentWarnings, validation.Each(validation.Required)),
	)
}

// Manuscript is the result of compiling a path.
type Manuscript struct {
	Root         string     `json:"root"`
	Title        string     `json:"title"`
	Author       string     `json:"author,omitempty"`
	ShortTitle   string     `json:"short_title"`
	ShortAuthor  string     `json:"short_author,omitempty"`
	Metadata     Metadata   `json:"metadata"`
	Blocks       []Block    `json:"blocks"`
	Words        int        `json:"words"`
	RoundedWords uint       `json:"rounded_words"`
	Fingerprint  string     `json:"fingerprint"`
	Stats        *LoadStats `json:"stats"`
}

// Compile loads the tree at root and assembles it.
func Compile(root string) (*Manuscript, Corpus, error) {
	corpus, stats, err := Load(root)
	if err != nil {
		return nil, nil, err
	}
	m, err := CompileCorpus(corpus)
	if err != nil {
		return nil, corpus, err
	}
	m.Stats = stats
	return m, corpus, nil
}

// CompileCorpus assembles an already loaded corpus. The corpus is only read,
// so several variants may compile from one corpus.
func CompileCorpus(corpus Corpus) (*Manuscript, error) {
	key, root, err := ResolveRoot(corpus)
	if err != nil {
		return nil, err
	}

	blocks, err := Assemble(corpus, root)
	if err != nil {
		return nil, err
	}

	words := CountBlockWords(blocks)
	meta := root.Metadata
	title := value(meta.Title)
	if strings.TrimSpace(title) == "" {
		title = strings.TrimSuffix(path.Base(key), MarkdownExt)
	}
	author := value(meta.Author)

	return &Manuscript{
		Root:         key,
		Title:        title,
		Author:       author,
		ShortTitle:   firstNonBlank(value(meta.ShortTitle), title),
		ShortAuthor:  firstNonBlank(value(meta.ShortAuthor), surname(author)),
		Metadata:     meta,
		Blocks:       blocks,
		Words:        words,
		RoundedWords: RoundUp(uint(words)),
		Fingerprint:  corpus.Fingerprint(),
	}, nil
}

// surname returns the last word of a name.
func surname(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
