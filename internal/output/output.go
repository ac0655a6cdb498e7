package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
)

// Printer writes command results either as JSON documents or as styled
// human text. In human mode errors and warnings go to a separate writer
// when one is set.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	json   bool
	isTTY  bool
	styles *Styles
}

// NewPrinter returns a printer writing to writer. isTTY enables color in
// human mode.
func NewPrinter(writer io.Writer, jsonMode bool, isTTY bool) *Printer {
	return &Printer{
		w:      writer,
		errW:   writer,
		json:   jsonMode,
		isTTY:  isTTY,
		styles: newStyles(isTTY),
	}
}

// WithStderr routes human-mode errors, warnings and status lines to w. JSON
// mode keeps everything on the main writer.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsJSON reports whether the printer emits JSON.
func (p *Printer) IsJSON() bool {
	return p.json
}

// IsTTY reports whether human output is styled.
func (p *Printer) IsTTY() bool {
	return p.isTTY
}

// Success reports a finished command. JSON mode encodes data as is. Human
// mode prints data["message"] when it is a string, otherwise one
// "key: value" line per entry in key order.
func (p *Printer) Success(data map[string]any) error {
	if p.json {
		return p.WriteJSON(data)
	}
	if msg, ok := data["message"].(string); ok {
		mustWrite(fmt.Fprintln(p.w, p.styles.Success.Render(msg)))
		return nil
	}
	for _, key := range slices.Sorted(maps.Keys(data)) {
		mustWrite(fmt.Fprintf(p.w, "%s: %v\n", p.styles.Bold.Render(key), data[key]))
	}
	return nil
}

// Error reports err. JSON mode writes {"error": ..., "code": ...} to the main
// writer; human mode writes "Error: ..." to the error writer. Errors that are
// not an *ExitError take their code from GetExitCode.
func (p *Printer) Error(err error) {
	message, code := err.Error(), GetExitCode(err)
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		message = exitErr.Message
	}

	if p.json {
		mustWrite(fmt.Fprintf(p.w, "%s\n", ErrorJSON(message, code)))
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), message))
}

// Warn reports a non-fatal diagnostic such as a skipped file.
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.json {
		_ = p.WriteJSON(map[string]string{"warning": msg})
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Warning.Render("Warning"), msg))
}

// Stderr writes a status line such as the watch banner. It is silent in
// JSON mode.
func (p *Printer) Stderr(format string, args ...any) {
	if !p.json {
		mustWrite(fmt.Fprintf(p.errW, format, args...))
	}
}

// Print writes formatted text to the main writer.
func (p *Printer) Print(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.w, format, args...))
}

// Println writes args and a newline to the main writer.
func (p *Printer) Println(args ...any) {
	mustWrite(fmt.Fprintln(p.w, args...))
}

// WriteJSON encodes data as indented JSON on the main writer.
func (p *Printer) WriteJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ErrorJSON returns {"error": message, "code": code}.
func ErrorJSON(message string, code int) []byte {
	result, _ := json.Marshal(map[string]any{"error": message, "code": code})
	return result
}

// mustWrite panics on a failed write to stdout, stderr or a buffer, none of
// which fail in practice.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
