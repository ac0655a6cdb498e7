package manuscript

// OutlineEntry describes one included fragment.
type OutlineEntry struct {
	Path       string `json:"path"`
	Heading    string `json:"heading,omitempty"`
	Paragraphs int    `json:"paragraphs"`
	Words      int    `json:"words"`
	Missing    bool   `json:"missing,omitempty"`
}

// Outline lists the fragments a root document pulls in, in manifest order.
// Unlike Assemble it does not stop at a missing include; the entry is
// flagged instead. A standalone root is reported as a single entry.
func Outline(corpus Corpus, key string, root Document) []OutlineEntry {
	if !root.Metadata.HasManifest() {
		return []OutlineEntry{outlineEntry(key, root)}
	}

	entries := make([]OutlineEntry, 0, len(root.Metadata.Include))
	for _, include := range root.Metadata.Include {
		doc, ok := corpus.Lookup(include)
		if !ok {
			entries = append(entries, OutlineEntry{Path: include, Missing: true})
			continue
		}
		entries = append(entries, outlineEntry(include, doc))
	}
	return entries
}

func outlineEntry(path string, doc Document) OutlineEntry {
	blocks := ContentBlocks(doc.Content)
	paragraphs := 0
	for _, b := range blocks {
		if b.Kind == KindParagraph {
			paragraphs++
		}
	}
	return OutlineEntry{
		Path:       path,
		Heading:    value(doc.Metadata.Heading),
		Paragraphs: paragraphs,
		Words:      CountBlockWords(blocks),
	}
}
