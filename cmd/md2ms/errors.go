package main

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/gorewood/md2ms/internal/manuscript"
	"github.com/gorewood/md2ms/internal/output"
)

// classifyError attaches an exit code to an error from the manuscript,
// config or export layers. Errors that already carry a code pass through.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	var (
		fileNotFound *manuscript.FileNotFoundError
		nested       *manuscript.NestedManifestError
		ambiguous    *manuscript.AmbiguousRootError
		invalid      validation.Errors
	)
	switch {
	case errors.As(err, &ambiguous):
		return output.NewConflictErrorWithCause(err.Error(), err)
	case errors.Is(err, manuscript.ErrNotFound),
		errors.Is(err, manuscript.ErrNoManuscript),
		errors.As(err, &fileNotFound),
		errors.As(err, &nested),
		errors.As(err, &invalid):
		return output.NewUserErrorWithCause(err.Error(), err)
	default:
		return output.NewSystemErrorWithCause(err.Error(), err)
	}
}

// fail classifies err, prints it and returns it for cobra.
func fail(printer *output.Printer, err error) error {
	err = classifyError(err)
	printer.Error(err)
	return err
}
