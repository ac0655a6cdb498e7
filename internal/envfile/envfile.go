// Package envfile loads md2ms settings from .env files.
// Only MD2MS_* variables are imported, and variables already set in the
// environment take precedence.
package envfile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/subosito/gotenv"
)

// Prefix selects the variables imported from an env file.
const Prefix = "MD2MS_"

// Load reads a .env file and sets any MD2MS_ variables not already in the
// environment. Returns nil if the file doesn't exist. Returns an error for
// read failures and malformed lines.
func Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	env, err := gotenv.StrictParse(file)
	if err != nil {
		return fmt.Errorf("reading env file %s: %w", path, err)
	}

	for key, value := range env {
		if !strings.HasPrefix(key, Prefix) {
			continue
		}
		if os.Getenv(key) == "" {
			_ = os.Setenv(key, value)
		}
	}
	return nil
}

// LoadAll loads each file in order. Earlier files win over later ones
// because existing variables are never replaced.
func LoadAll(paths ...string) error {
	for _, path := range paths {
		if err := Load(path); err != nil {
			return err
		}
	}
	return nil
}
