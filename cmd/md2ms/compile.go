package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/md2ms/internal/config"
	"github.com/gorewood/md2ms/internal/export"
	"github.com/gorewood/md2ms/internal/manuscript"
	"github.com/gorewood/md2ms/internal/output"
	"github.com/gorewood/md2ms/internal/watch"
)

// Output formats accepted by --format.
const (
	formatDocx = "docx"
	formatText = "txt"
	formatMD   = "md"
	formatJSON = "json"
)

var formats = []string{formatDocx, formatText, formatMD, formatJSON}

// compileFlags holds the compile command's own flags. Flags that override
// settings are read through viper instead.
type compileFlags struct {
	format    string
	wordCount bool
	exact     bool
	watch     bool
}

// newCompileCmd creates the compile command.
func newCompileCmd() *cobra.Command {
	var flags compileFlags
	cmd := &cobra.Command{
		Use:   "compile <path>",
		Short: "Compile a manuscript into .docx files",
		Long: `Compile a manuscript directory (or a single Markdown file) into Standard
Manuscript Format.

By default one .docx file is written per configured font. --anonymous adds
a variant without author details and --classic adds a variant with italics
set as underline; the two multiply. Other formats write to stdout.

Examples:
  md2ms compile ./novel                          # Write .docx files to output_dir
  md2ms compile ./novel -o ./out --font "Courier New"
  md2ms compile ./novel --anonymous --classic    # Four variants per font
  md2ms compile ./story.md --format txt          # Plain text to stdout
  md2ms compile ./novel --word-count --exact     # Print the word counts only
  md2ms compile ./novel --watch                  # Recompile on every change`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringP("output-dir", "o", "", "Directory to write .docx files to (default: output_dir setting)")
	cmd.Flags().StringArray("font", nil, "Font to render in (repeatable; default: fonts setting)")
	cmd.Flags().Int("font-size", 0, "Font size in points (default: font_size setting)")
	cmd.Flags().String("pii", "", "Markdown file with contact information for the cover page")
	cmd.Flags().Bool("anonymous", false, "Also write anonymous variants")
	cmd.Flags().Bool("classic", false, "Also write classic variants with underlined italics")

	cmd.Flags().StringVar(&flags.format, "format", formatDocx, "Output format: "+strings.Join(formats, ", "))
	cmd.Flags().BoolVar(&flags.wordCount, "word-count", false, "Print the rounded word count and exit")
	cmd.Flags().BoolVar(&flags.exact, "exact", false, "With --word-count, print the exact count too")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "Recompile whenever a Markdown file changes")

	return cmd
}

// runCompile executes the compile command.
func runCompile(cmd *cobra.Command, path string, flags compileFlags) error {
	printer := newPrinter(cmd)

	if !slices.Contains(formats, flags.format) {
		return fail(printer, output.NewUserError(
			fmt.Sprintf("unknown format %q: use one of %s", flags.format, strings.Join(formats, ", "))))
	}
	if flags.exact && !flags.wordCount {
		return fail(printer, output.NewUserError("--exact requires --word-count"))
	}
	if flags.watch && flags.wordCount {
		return fail(printer, output.NewUserError("--watch cannot be combined with --word-count"))
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return fail(printer, err)
	}
	contact, err := loadContact(cfg.PII)
	if err != nil {
		return fail(printer, err)
	}

	build := &compileRun{printer: printer, cfg: cfg, contact: contact, flags: flags}

	if flags.watch {
		return build.watch(cmd.Context(), path)
	}

	corpus, stats, err := manuscript.Load(path)
	if err != nil {
		return fail(printer, err)
	}
	warnDiagnostics(printer, stats)
	if err := build.emit(corpus); err != nil {
		return fail(printer, err)
	}
	return nil
}

// compileRun turns a loaded corpus into the requested output.
type compileRun struct {
	printer *output.Printer
	cfg     *config.Config
	contact manuscript.Contact
	flags   compileFlags
}

func (r *compileRun) emit(corpus manuscript.Corpus) error {
	if r.flags.format == formatDocx && !r.flags.wordCount {
		return r.writeDocx(corpus)
	}

	m, err := manuscript.CompileCorpus(corpus)
	if err != nil {
		return err
	}

	switch {
	case r.flags.wordCount:
		return r.printWordCount(m)
	case r.flags.format == formatJSON:
		return export.FormatJSON(r.printer, m)
	case r.flags.format == formatMD:
		r.printer.Print("%s", export.FormatMarkdown(m))
	default:
		r.printer.Print("%s", export.FormatText(m))
	}
	return nil
}

func (r *compileRun) writeDocx(corpus manuscript.Corpus) error {
	variants := export.Variants(r.cfg.Fonts, export.Choices(r.cfg.Anonymous), export.Choices(r.cfg.Classic))
	written, err := export.WriteVariants(corpus, r.cfg.OutputDir, variants, export.Settings{
		FontSize: r.cfg.FontSize,
		Contact:  r.contact,
	})
	if err != nil {
		return err
	}

	if r.printer.IsJSON() {
		return r.printer.WriteJSON(map[string]any{
			"output_dir": r.cfg.OutputDir,
			"files":      written,
		})
	}

	noun := "manuscripts"
	if len(written) == 1 {
		noun = "manuscript"
	}
	if err := r.printer.Success(map[string]any{
		"message": fmt.Sprintf("Wrote %d %s to %s", len(written), noun, r.cfg.OutputDir),
	}); err != nil {
		return err
	}
	for _, w := range written {
		r.printer.Println("  " + w.Path)
	}
	return nil
}

func (r *compileRun) printWordCount(m *manuscript.Manuscript) error {
	if r.printer.IsJSON() {
		data := map[string]any{"words": m.RoundedWords}
		if r.flags.exact {
			data["exact"] = m.Words
		}
		return r.printer.WriteJSON(data)
	}

	r.printer.Println(m.RoundedWords)
	if r.flags.exact {
		r.printer.Println(m.Words)
	}
	return nil
}

// watch compiles now and after every change until interrupted. Failed
// compiles are reported and watching continues.
func (r *compileRun) watch(ctx context.Context, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	w, err := watch.New(path, watch.DefaultDebounce)
	if err != nil {
		return fail(r.printer, err)
	}
	defer w.Close() //nolint:errcheck // best-effort release on exit

	r.printer.Stderr("Watching %s (Ctrl-C to stop)\n", path)
	err = w.Run(ctx, func(change watch.Change) {
		if change.Err != nil {
			r.printer.Error(classifyError(change.Err))
			return
		}
		warnDiagnostics(r.printer, change.Stats)
		if err := r.emit(change.Corpus); err != nil {
			r.printer.Error(classifyError(err))
		}
	})
	if err != nil {
		return fail(r.printer, err)
	}
	return nil
}
