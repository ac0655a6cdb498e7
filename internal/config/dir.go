// Package config resolves md2ms settings from defaults, a config file,
// MD2MS_* environment variables and command-line flags.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Dir returns the md2ms configuration directory.
//
// Resolution:
//   - $MD2MS_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/md2ms if set (respects XDG on any platform)
//   - %AppData%/md2ms on Windows
//   - ~/.config/md2ms on macOS and Linux
func Dir() string {
	if dir := os.Getenv("MD2MS_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "md2ms")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "md2ms")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "md2ms")
}

// ExpandHome replaces a leading "~" with the user's home directory.
// Paths without one, and paths when the home directory is unknown, are
// returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
