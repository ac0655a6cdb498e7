package config

import (
	"errors"
	"fmt"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read as settings.
const EnvPrefix = "MD2MS"

// Setting keys. Environment variables use the upper-cased key with the
// prefix, e.g. MD2MS_OUTPUT_DIR.
const (
	KeyOutputDir = "output_dir"
	KeyFonts     = "fonts"
	KeyFontSize  = "font_size"
	KeyPII       = "pii"
	KeyAnonymous = "anonymous"
	KeyClassic   = "classic"
)

// Defaults.
const (
	DefaultOutputDir = "~/Documents/Writing"
	DefaultFontSize  = 12
)

// DefaultFonts are the fonts a manuscript is rendered in when none are configured.
var DefaultFonts = []string{"Courier New", "Times New Roman"}

// Config holds the resolved settings.
type Config struct {
	OutputDir string   `mapstructure:"output_dir" json:"output_dir"`
	Fonts     []string `mapstructure:"fonts"      json:"fonts"`
	FontSize  int      `mapstructure:"font_size"  json:"font_size"`
	PII       string   `mapstructure:"pii"        json:"pii,omitempty"`
	Anonymous bool     `mapstructure:"anonymous"  json:"anonymous"`
	Classic   bool     `mapstructure:"classic"    json:"classic"`
}

// Validate checks the settings a render depends on.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.Fonts, validation.Required, validation.Each(validation.Required)),
		validation.Field(&c.FontSize, validation.Required, validation.Min(6), validation.Max(72)),
	)
}

// Load returns a viper instance holding defaults, the config file and the
// environment. cfgFile names an explicit file; when empty, config.yaml is
// looked up in the working directory and then in Dir(). A missing default
// config file is not an error. Callers bind flags before calling Decode.
func Load(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyOutputDir, DefaultOutputDir)
	v.SetDefault(KeyFonts, DefaultFonts)
	v.SetDefault(KeyFontSize, DefaultFontSize)
	v.SetDefault(KeyPII, "")
	v.SetDefault(KeyAnonymous, false)
	v.SetDefault(KeyClassic, false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir := Dir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return v, nil
}

// Decode unmarshals the settings held by v, expands "~" in paths and
// validates the result.
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.OutputDir = filepath.Clean(ExpandHome(cfg.OutputDir))
	if cfg.PII != "" {
		cfg.PII = ExpandHome(cfg.PII)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
