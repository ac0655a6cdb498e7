package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/md2ms/internal/manuscript"
	"github.com/gorewood/md2ms/internal/output"
)

// checkResult is the JSON shape of the check command.
type checkResult struct {
	Root   string             `json:"root,omitempty"`
	OK     bool               `json:"ok"`
	Issues []manuscript.Issue `json:"issues"`
}

// newCheckCmd creates the check command.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>",
		Short: "Check a manuscript tree for problems",
		Long: `Check a manuscript tree without compiling it.

Reports every problem rather than stopping at the first: missing includes
and nested manifests (errors), duplicate includes, fragments the manifest
never references, empty fragments, and a missing title or author (warnings).
Exits with status 1 when any error is found.

Examples:
  md2ms check ./novel          # List issues
  md2ms check ./novel --json   # Issues as JSON for scripting`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0])
		},
	}
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, path string) error {
	printer := newPrinter(cmd)

	corpus, stats, err := manuscript.Load(path)
	if err != nil {
		return fail(printer, err)
	}
	warnDiagnostics(printer, stats)

	issues := manuscript.Check(corpus)
	root, _, _ := manuscript.ResolveRoot(corpus)

	if printer.IsJSON() {
		if issues == nil {
			issues = []manuscript.Issue{}
		}
		result := checkResult{Root: root, OK: !manuscript.HasErrors(issues), Issues: issues}
		if err := printer.WriteJSON(result); err != nil {
			return fail(printer, err)
		}
	} else {
		printIssues(printer, issues)
	}

	if err := manuscript.CheckError(issues); err != nil {
		return output.NewUserErrorWithCause(err.Error(), err)
	}
	return nil
}

func printIssues(printer *output.Printer, issues []manuscript.Issue) {
	if len(issues) == 0 {
		printer.Println("No issues found")
		return
	}

	errs := 0
	for _, issue := range issues {
		if issue.Severity == manuscript.SeverityError {
			errs++
		}
		printer.Issue(string(issue.Severity), issue.Path, issue.Message)
	}
	printer.Println()
	printer.Println(fmt.Sprintf("%s, %s", plural(errs, "error"), plural(len(issues)-errs, "warning")))
}

// plural formats a count with a noun, adding "s" unless the count is one.
func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
