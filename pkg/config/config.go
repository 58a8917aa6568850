// Package config loads optional tool configuration from a TOML file.
//
// Configuration lives at ~/.config/rss/config.toml (or under
// $XDG_CONFIG_HOME when set). Every field has a working default, so a
// missing file is not an error; the tool is fully usable unconfigured.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/tylerneylon/rss/pkg/errors"
)

// appName is used for the configuration directory.
const appName = "rss"

// Config holds user preferences for the rss tool.
type Config struct {
	// Author is the default author for new items. When set, new template
	// items use it instead of the AUTHOR placeholder.
	Author string `toml:"author"`

	// LinkPrefix, when set, pre-fills the link field of new items
	// (e.g., "https://example.com/posts/").
	LinkPrefix string `toml:"link_prefix"`

	// DigitalDates selects the zero-padded digital date form by default
	// for the date command.
	DigitalDates bool `toml:"digital_dates"`

	// Color controls styled terminal output: "auto", "always", or "never".
	Color string `toml:"color"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{Color: "auto"}
}

// Path returns the configuration file location using the XDG standard
// (~/.config/rss/config.toml).
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the configuration file at the standard path. A missing file
// yields the defaults with no error.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a configuration file at an explicit path. A missing file
// yields the defaults; a file that exists but fails to parse or contains
// an invalid setting is an INVALID_CONFIG error.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	switch cfg.Color {
	case "", "auto", "always", "never":
	default:
		return Default(), errors.New(errors.ErrCodeInvalidConfig,
			"color must be auto, always, or never (got %q)", cfg.Color)
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	return cfg, nil
}
