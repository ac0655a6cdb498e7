// Package main provides the entry point for the md2ms CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/md2ms/internal/config"
	"github.com/gorewood/md2ms/internal/envfile"
	"github.com/gorewood/md2ms/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// lookupFlag finds a flag on the command or, failing that, among the root's
// persistent flags.
func lookupFlag(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	return lookupFlag(cmd, "json") == "true"
}

// useColor resolves --color against TTY detection on the command's stdout.
func useColor(cmd *cobra.Command) bool {
	return output.ResolveColorMode(lookupFlag(cmd, "color"), output.IsTTY(cmd.OutOrStdout()))
}

// newPrinter returns the printer every command writes through.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the md2ms CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "md2ms",
		Short: "Compile Markdown fragments into a standard manuscript",
		Long: `md2ms - Compile a tree of Markdown fragments into Standard Manuscript Format.

A manuscript is a directory of Markdown files. A metadata.md file (or the
single file that declares one) lists the fragments to include, in order,
and carries the title, author and short forms used in the running header.
md2ms assembles the fragments into paragraphs, scene separators and section
breaks, counts the words, and writes one .docx per font and variant.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'md2ms --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Load .env.local, .env and the global env file before any command reads
	// the environment. Variables already exported always take precedence.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := output.ValidateColorMode(lookupFlag(cmd, "color")); err != nil {
			exitErr := output.NewUserErrorWithCause(err.Error(), err)
			output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), false).
				WithStderr(cmd.ErrOrStderr()).Error(exitErr)
			return exitErr
		}
		if err := loadEnvFiles(); err != nil {
			exitErr := output.NewUserErrorWithCause(err.Error(), err)
			newPrinter(cmd).Error(exitErr)
			return exitErr
		}
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("config", "", "Config file (default: ./config.yaml, then the md2ms config directory)")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Color output: auto, always or never")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins.
//
// Resolution order:
//  1. $CWD/.env.local
//  2. $CWD/.env
//  3. <config dir>/env
func loadEnvFiles() error {
	paths := []string{".env.local", ".env"}
	if dir := config.Dir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "env"))
	}
	return envfile.LoadAll(paths...)
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "build", Title: "Build Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "inspect", Title: "Inspect Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newCompileCmd(), "build")

	addGroupedCommand(cmd, newCheckCmd(), "inspect")
	addGroupedCommand(cmd, newOutlineCmd(), "inspect")

	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
