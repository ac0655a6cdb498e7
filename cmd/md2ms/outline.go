package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/md2ms/internal/manuscript"
	"github.com/gorewood/md2ms/internal/output"
)

// outlineResult is the JSON shape of the outline command.
type outlineResult struct {
	Root      string                    `json:"root"`
	Title     string                    `json:"title,omitempty"`
	Author    string                    `json:"author,omitempty"`
	Words     int                       `json:"words"`
	Fragments []manuscript.OutlineEntry `json:"fragments"`
}

// newOutlineCmd creates the outline command.
func newOutlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outline <path>",
		Short: "List the fragments a manuscript includes",
		Long: `List the fragments a manuscript includes, in manifest order, with each
fragment's heading, paragraph count and word count. Includes that do not
resolve to a file are listed and marked missing.

Examples:
  md2ms outline ./novel
  md2ms outline ./novel --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOutline(cmd, args[0])
		},
	}
}

// runOutline executes the outline command.
func runOutline(cmd *cobra.Command, path string) error {
	printer := newPrinter(cmd)

	corpus, stats, err := manuscript.Load(path)
	if err != nil {
		return fail(printer, err)
	}
	warnDiagnostics(printer, stats)

	key, root, err := manuscript.ResolveRoot(corpus)
	if err != nil {
		return fail(printer, err)
	}

	result := outlineResult{
		Root:      key,
		Fragments: manuscript.Outline(corpus, key, root),
	}
	if root.Metadata.Title != nil {
		result.Title = *root.Metadata.Title
	}
	if root.Metadata.Author != nil {
		result.Author = *root.Metadata.Author
	}
	for _, entry := range result.Fragments {
		result.Words += entry.Words
	}

	if printer.IsJSON() {
		if err := printer.WriteJSON(result); err != nil {
			return fail(printer, err)
		}
		return nil
	}

	printOutline(printer, result)
	return nil
}

func printOutline(printer *output.Printer, result outlineResult) {
	printer.KeyValue("Root", result.Root)
	if result.Title != "" {
		printer.KeyValue("Title", result.Title)
	}
	if result.Author != "" {
		printer.KeyValue("Author", result.Author)
	}
	printer.KeyValue("Words", strconv.Itoa(result.Words))

	printer.Section("Fragments")
	rows := make([][]string, 0, len(result.Fragments))
	for _, entry := range result.Fragments {
		if entry.Missing {
			rows = append(rows, []string{entry.Path, "(missing)", "", ""})
			continue
		}
		rows = append(rows, []string{
			entry.Path,
			entry.Heading,
			strconv.Itoa(entry.Paragraphs),
			strconv.Itoa(entry.Words),
		})
	}
	printer.Table([]string{"PATH", "HEADING", "PARAGRAPHS", "WORDS"}, rows)
}
