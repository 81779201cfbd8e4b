package paths

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// Config is a project configuration file. It names the locales to compare,
// where reference and localized files live, and per-path check suppressions.
type Config struct {
	// BasePath anchors all patterns, relative to the config file.
	BasePath string `toml:"basepath"`
	// Locales are the target locale codes.
	Locales []string `toml:"locales"`
	// PseudoLocales are locales allowed to mirror the reference verbatim.
	PseudoLocales []string `toml:"pseudo_locales"`
	// Plurals maps a locale code to the plural-form count it requires.
	// The compare engine treats this as opaque lookup data.
	Plurals map[string]int `toml:"plurals"`
	Paths   []PathRule     `toml:"paths"`
	Filters []FilterRule   `toml:"filters"`

	root string
}

// PathRule pairs a reference pattern with its localized counterpart. The
// reference may contain one "*" wildcard; "{locale}" and "*" in l10n are
// substituted per matched file and locale.
type PathRule struct {
	Reference string `toml:"reference"`
	L10n      string `toml:"l10n"`
	// Locales restricts this rule to a subset of the project locales.
	Locales []string `toml:"locales"`
}

// FilterRule suppresses check codes for localized paths matching a pattern.
type FilterRule struct {
	Path   string   `toml:"path"`
	Checks []string `toml:"checks"`
}

// Load reads and validates a project configuration.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("load project config %s: %w", path, err)
	}

	if len(cfg.Paths) == 0 {
		return nil, fmt.Errorf("project config %s: no [[paths]] defined", path)
	}
	if len(cfg.Locales) == 0 {
		return nil, fmt.Errorf("project config %s: no locales defined", path)
	}
	for _, loc := range append(append([]string{}, cfg.Locales...), cfg.PseudoLocales...) {
		if _, err := language.Parse(loc); err != nil {
			return nil, fmt.Errorf("project config %s: invalid locale %q: %w", path, loc, err)
		}
	}
	for _, p := range cfg.Paths {
		if p.Reference == "" || p.L10n == "" {
			return nil, fmt.Errorf("project config %s: paths need both reference and l10n", path)
		}
	}

	if cfg.BasePath == "" {
		cfg.BasePath = "."
	}
	cfg.root = filepath.Join(filepath.Dir(path), cfg.BasePath)

	return &cfg, nil
}

// Root returns the directory all patterns resolve against.
func (c *Config) Root() string { return c.root }

// PluralForms returns the plural-form count for a locale, 0 when unknown.
func (c *Config) PluralForms(locale string) int {
	return c.Plurals[locale]
}

// IsPseudo reports whether a locale is a pseudo-locale.
func (c *Config) IsPseudo(locale string) bool {
	for _, p := range c.PseudoLocales {
		if p == locale {
			return true
		}
	}
	return false
}
