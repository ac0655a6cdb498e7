// Package manuscript compiles a tree of Markdown fragments into an ordered
// sequence of manuscript blocks.
//
// # Pipeline
//
//	corpus, stats, err := manuscript.Load(path)   // path -> parsed documents
//	key, root, err := manuscript.ResolveRoot(corpus)
//	blocks, err := manuscript.Assemble(corpus, root)
//	words := manuscript.CountBlockWords(blocks)
//	display := manuscript.RoundUp(uint(words))
//
// Compile wraps these steps.
//
// # Fragments
//
// Each fragment is a Markdown file with optional YAML front matter:
//
//	---
//	title: The Lighthouse
//	author: Jane Q. Writer
//	include:
//	  - Act 1/heading.md
//	  - Act 1/scene1.md
//	  - Act 1/scene2.md
//	---
//
// The root document (metadata.md when present) lists the fragments to include
// in order. A fragment with a heading starts a new section on a new page;
// consecutive fragments without one are divided by a scene separator.
//
// # Inline markup
//
// Lines are tokenized into runs. Only *emphasis*, **strong** and
// ~~strikethrough~~ are kept; links are reduced to their label and %% comments
// are removed before tokenizing.
package manuscript
