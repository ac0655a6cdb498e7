package output

import (
	"fmt"
	"io"
	"os"
)

// Values accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ValidateColorMode rejects --color values other than auto, always and never.
// The empty string is treated as auto.
func ValidateColorMode(colorMode string) error {
	switch colorMode {
	case "", ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return fmt.Errorf("invalid --color value %q (want %s, %s or %s)", colorMode, ColorAuto, ColorAlways, ColorNever)
}

// ResolveColorMode decides whether styles are applied. "never" and "always"
// override TTY detection; anything else defers to isTTY.
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		return isTTY
	}
}

// IsTTY reports whether writer is a terminal. Only an *os.File can be one.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}
