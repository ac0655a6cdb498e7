// Package export turns a compiled manuscript into output files and streams.
//
// # Variants
//
// A submission usually needs several copies of the same manuscript: one per
// font, with and without the author's details, in modern or classic style.
// Variants builds the full matrix:
//
//	variants := export.Variants(
//		[]string{"Courier New", "Times New Roman"},
//		export.Choices(true),  // attributed and anonymous
//		export.Choices(false), // modern only
//	)
//
// Each variant is written as a .docx file named after the manuscript:
//
//	The Lighthouse - Courier New.docx
//	The Lighthouse - Courier New - Anonymous.docx
//	The Lighthouse - Times New Roman - Classic.docx
//
// Files are written to a temporary name and renamed into place, so a reader
// never sees a partial document.
//
// # Streams
//
// For previews and tooling the manuscript can also be rendered to a writer:
//
//	export.FormatText(m)          // plain text, headings and "#" separators
//	export.FormatMarkdown(m)      // single flattened Markdown document
//	export.FormatJSON(printer, m) // block sequence with run styles
package export
