package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gorewood/md2ms/internal/config"
	"github.com/gorewood/md2ms/internal/manuscript"
	"github.com/gorewood/md2ms/internal/output"
)

// flagKeys maps command flags onto the setting keys they override.
var flagKeys = map[string]string{
	"output-dir": config.KeyOutputDir,
	"font":       config.KeyFonts,
	"font-size":  config.KeyFontSize,
	"pii":        config.KeyPII,
	"anonymous":  config.KeyAnonymous,
	"classic":    config.KeyClassic,
}

// loadSettings resolves configuration for cmd: defaults, config file,
// environment, then any of the command's flags named in flagKeys.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	v, err := config.Load(lookupFlag(cmd, "config"))
	if err != nil {
		return nil, output.NewUserErrorWithCause(err.Error(), err)
	}
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to bind flags", err)
	}
	cfg, err := config.Decode(v)
	if err != nil {
		return nil, output.NewUserErrorWithCause(err.Error(), err)
	}
	return cfg, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

// loadContact reads the contact-information file named by the pii setting.
// An empty path yields an empty contact.
func loadContact(path string) (manuscript.Contact, error) {
	if path == "" {
		return manuscript.Contact{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return manuscript.Contact{}, output.NewUserErrorWithCause("failed to read contact file "+path, err)
	}
	contact := manuscript.ParseContact(string(data))
	if err := contact.Validate(); err != nil {
		return manuscript.Contact{}, output.NewUserErrorWithCause(fmt.Sprintf("invalid contact file %s: %v", path, err), err)
	}
	return contact, nil
}

// warnDiagnostics reports files the loader had to skip.
func warnDiagnostics(printer *output.Printer, stats *manuscript.LoadStats) {
	if stats == nil {
		return
	}
	for _, d := range stats.Diagnostics {
		if d.Kind == manuscript.DiagnosticParseSkipped {
			printer.Warn("skipped %s: %s", d.Path, d.Reason)
		}
	}
}
