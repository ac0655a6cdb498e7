// Package output provides structured output handling for the md2ms CLI.
//
// Every command writes through a Printer so that the same command serves a
// writer at a terminal and a script or agent reading JSON.
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.IsTTY(cmd.OutOrStdout())).
//		WithStderr(cmd.ErrOrStderr())
//
//	printer.Warn("skipped %s: %s", path, reason)  // load diagnostics
//	printer.Table(headers, rows)                   // outline
//	printer.Issue("error", "ghost.md", message)    // check findings
//	printer.WriteJSON(doc)                          // --json
//
// # JSON Mode
//
// With --json, results are encoded as indented JSON on stdout and errors as
//
//	{"error": "message", "code": N}
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: Missing path or include, nested manifest, bad flags or config
//	output.ExitSystemError // 2: I/O or render failure
//	output.ExitConflict    // 3: More than one document could be the manuscript root
//
// Errors built with NewUserError, NewSystemError, NewConflictError and their
// WithCause forms carry the code used for both JSON error output and the
// process exit status.
package output
