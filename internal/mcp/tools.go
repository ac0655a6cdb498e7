package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/md2ms/internal/config"
	"github.com/gorewood/md2ms/internal/export"
	"github.com/gorewood/md2ms/internal/manuscript"
)

// --- Shared types ---

// FileRef is a written manuscript file.
type FileRef struct {
	Path      string `json:"path"      jsonschema:"path of the written .docx file"`
	Font      string `json:"font"      jsonschema:"font the variant is set in"`
	Anonymous bool   `json:"anonymous" jsonschema:"whether author details are left out"`
	Classic   bool   `json:"classic"   jsonschema:"whether italics are rendered as underline"`
}

// Fragment is one included fragment in an outline.
type Fragment struct {
	Path       string `json:"path"              jsonschema:"include path as written in the manifest"`
	Heading    string `json:"heading,omitempty" jsonschema:"section heading the fragment opens with"`
	Paragraphs int    `json:"paragraphs"        jsonschema:"number of paragraphs"`
	Words      int    `json:"words"             jsonschema:"exact word count"`
	Missing    bool   `json:"missing,omitempty" jsonschema:"the include does not resolve to a file"`
}

// IssueRef is a check finding.
type IssueRef struct {
	Code     string `json:"code"           jsonschema:"rule that produced the issue"`
	Severity string `json:"severity"       jsonschema:"error or warning"`
	Path     string `json:"path,omitempty" jsonschema:"fragment the issue concerns"`
	Message  string `json:"message"        jsonschema:"human-readable description"`
}

// --- Compile tool ---

// CompileInput is the input for the compile tool.
type CompileInput struct {
	Path      string   `json:"path"                 jsonschema:"manuscript directory or Markdown file (required)"`
	OutputDir string   `json:"output_dir,omitempty" jsonschema:"directory to write into (defaults to the configured output_dir)"`
	Fonts     []string `json:"fonts,omitempty"      jsonschema:"fonts to render (defaults to the configured fonts)"`
	Anonymous bool     `json:"anonymous,omitempty"  jsonschema:"also write anonymous variants"`
	Classic   bool     `json:"classic,omitempty"    jsonschema:"also write classic variants with underlined italics"`
}

// CompileOutput is the output for the compile tool.
type CompileOutput struct {
	Title    string    `json:"title"              jsonschema:"manuscript title"`
	Words    uint      `json:"words"              jsonschema:"rounded word count printed on the cover page"`
	Files    []FileRef `json:"files"              jsonschema:"files written, one per variant"`
	Warnings []string  `json:"warnings,omitempty" jsonschema:"files that could not be parsed and were left out"`
}

func handleCompile(defaults Defaults) mcp.ToolHandlerFor[CompileInput, CompileOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input CompileInput) (*mcp.CallToolResult, CompileOutput, error) {
		path, err := requirePath(input.Path)
		if err != nil {
			return nil, CompileOutput{}, err
		}

		corpus, stats, err := manuscript.Load(path)
		if err != nil {
			return nil, CompileOutput{}, err
		}

		dir := input.OutputDir
		if dir == "" {
			dir = defaults.OutputDir
		}
		if dir == "" {
			return nil, CompileOutput{}, errOutputDirRequired
		}
		dir = config.ExpandHome(dir)

		fonts := input.Fonts
		if len(fonts) == 0 {
			fonts = defaults.Fonts
		}
		fontSize := defaults.FontSize
		if fontSize == 0 {
			fontSize = config.DefaultFontSize
		}

		variants := export.Variants(fonts, export.Choices(input.Anonymous), export.Choices(input.Classic))
		written, err := export.WriteVariants(corpus, dir, variants, export.Settings{
			FontSize: fontSize,
			Contact:  defaults.Contact,
		})
		if err != nil {
			return nil, CompileOutput{}, fmt.Errorf("compiling %s: %w", path, err)
		}

		m, err := manuscript.CompileCorpus(corpus)
		if err != nil {
			return nil, CompileOutput{}, err
		}

		return nil, CompileOutput{
			Title:    m.Title,
			Words:    m.RoundedWords,
			Files:    toFileRefs(written),
			Warnings: skippedWarnings(stats),
		}, nil
	}
}

// skippedWarnings describes each file the loader could not parse.
func skippedWarnings(stats *manuscript.LoadStats) []string {
	if stats == nil {
		return nil
	}
	var warnings []string
	for _, d := range stats.Diagnostics {
		if d.Kind == manuscript.DiagnosticParseSkipped {
			warnings = append(warnings, fmt.Sprintf("%s: %s", d.Path, d.Reason))
		}
	}
	return warnings
}

// --- Word count tool ---

// WordCountInput is the input for the word_count tool.
type WordCountInput struct {
	Path string `json:"path" jsonschema:"manuscript directory or Markdown file (required)"`
}

// WordCountOutput is the output for the word_count tool.
type WordCountOutput struct {
	Root    string `json:"root"    jsonschema:"document the manuscript was compiled from"`
	Title   string `json:"title"   jsonschema:"manuscript title"`
	Words   int    `json:"words"   jsonschema:"exact word count"`
	Rounded uint   `json:"rounded" jsonschema:"word count rounded for the cover page"`
}

func handleWordCount() mcp.ToolHandlerFor[WordCountInput, WordCountOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input WordCountInput) (*mcp.CallToolResult, WordCountOutput, error) {
		path, err := requirePath(input.Path)
		if err != nil {
			return nil, WordCountOutput{}, err
		}

		m, _, err := manuscript.Compile(path)
		if err != nil {
			return nil, WordCountOutput{}, fmt.Errorf("compiling %s: %w", path, err)
		}

		return nil, WordCountOutput{
			Root:    m.Root,
			Title:   m.Title,
			Words:   m.Words,
			Rounded: m.RoundedWords,
		}, nil
	}
}

// --- Outline tool ---

// OutlineInput is the input for the outline tool.
type OutlineInput struct {
	Path string `json:"path" jsonschema:"manuscript directory or Markdown file (required)"`
}

// OutlineOutput is the output for the outline tool.
type OutlineOutput struct {
	Root      string     `json:"root"             jsonschema:"document that defines the manuscript"`
	Title     string     `json:"title,omitempty"  jsonschema:"title from the root metadata"`
	Author    string     `json:"author,omitempty" jsonschema:"author from the root metadata"`
	Fragments []Fragment `json:"fragments"        jsonschema:"included fragments in manifest order"`
}

func handleOutline() mcp.ToolHandlerFor[OutlineInput, OutlineOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input OutlineInput) (*mcp.CallToolResult, OutlineOutput, error) {
		path, err := requirePath(input.Path)
		if err != nil {
			return nil, OutlineOutput{}, err
		}

		corpus, _, err := manuscript.Load(path)
		if err != nil {
			return nil, OutlineOutput{}, err
		}
		key, root, err := manuscript.ResolveRoot(corpus)
		if err != nil {
			return nil, OutlineOutput{}, err
		}

		out := OutlineOutput{
			Root:      key,
			Fragments: toFragments(manuscript.Outline(corpus, key, root)),
		}
		if root.Metadata.Title != nil {
			out.Title = *root.Metadata.Title
		}
		if root.Metadata.Author != nil {
			out.Author = *root.Metadata.Author
		}
		return nil, out, nil
	}
}

// --- Check tool ---

// CheckInput is the input for the check tool.
type CheckInput struct {
	Path string `json:"path" jsonschema:"manuscript directory or Markdown file (required)"`
}

// CheckOutput is the output for the check tool.
type CheckOutput struct {
	OK       bool       `json:"ok"       jsonschema:"true when no issue is an error"`
	Errors   int        `json:"errors"   jsonschema:"number of error issues"`
	Warnings int        `json:"warnings" jsonschema:"number of warning issues"`
	Issues   []IssueRef `json:"issues"   jsonschema:"every issue found"`
}

func handleCheck() mcp.ToolHandlerFor[CheckInput, CheckOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input CheckInput) (*mcp.CallToolResult, CheckOutput, error) {
		path, err := requirePath(input.Path)
		if err != nil {
			return nil, CheckOutput{}, err
		}

		corpus, _, err := manuscript.Load(path)
		if err != nil {
			return nil, CheckOutput{}, err
		}

		issues, errs := toIssueRefs(manuscript.Check(corpus))
		return nil, CheckOutput{
			OK:       errs == 0,
			Errors:   errs,
			Warnings: len(issues) - errs,
			Issues:   issues,
		}, nil
	}
}
