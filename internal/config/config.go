// Package config handles the machine-level orgmap settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultRuleset is the ruleset file used when neither a flag nor the
// settings file names one.
const DefaultRuleset = "organize.yaml"

// Config represents the orgmap settings.
type Config struct {
	// Ruleset is the organizer ruleset edited by default.
	Ruleset string `toml:"ruleset"`

	// DefaultSource is offered as the new source directory in interactive mode.
	DefaultSource string `toml:"default_source"`

	// DefaultDestBase is offered as the new destination base in interactive mode.
	DefaultDestBase string `toml:"default_dest_base"`

	// Backup keeps a .bak copy of the ruleset before it is overwritten.
	// Unset means enabled.
	Backup *bool `toml:"backup"`

	// Journal records every saved rewrite. Unset means enabled.
	Journal *bool `toml:"journal"`

	// StateDir holds the journal. Relative values resolve against the
	// settings file directory.
	StateDir string `toml:"state_dir"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown rendering.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`
}

// BackupEnabled reports whether rulesets are backed up before saving.
func (c *Config) BackupEnabled() bool {
	return c == nil || c.Backup == nil || *c.Backup
}

// JournalEnabled reports whether saved rewrites are journaled.
func (c *Config) JournalEnabled() bool {
	return c == nil || c.Journal == nil || *c.Journal
}

// Load loads the settings from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	return LoadOrDefault(DefaultPath())
}

// LoadOrDefault loads path, returning an empty config when it is missing.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadFrom(path)
}

// LoadFrom loads the settings from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	md, err := toml.DecodeFile(path, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in settings %s", undecoded[0].String(), path)
	}
	return &config, nil
}

// DefaultPath returns the default settings file path.
// Checks ~/.config/orgmap/settings.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if xdgPath, err := XDGPath(); err == nil {
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "orgmap", "settings.toml")
	}

	return filepath.Join(".", "settings.toml")
}

// XDGPath returns the XDG-style settings path (~/.config/orgmap/settings.toml).
func XDGPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "orgmap", "settings.toml"), nil
}

const defaultSettings = `# orgmap settings

# Ruleset edited when --ruleset is not given
# ruleset = "~/.config/organize/config.yaml"

# Values offered by "orgmap remap --interactive"
# default_source = "~/Downloads"
# default_dest_base = "~/Organized"

# Keep a .bak copy of the ruleset before overwriting it
# backup = true

# Record every saved rewrite in a JSONL journal
# journal = true
# state_dir = "state"

# Optional UI accent color for headers in terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"
`

// CreateDefaultAt writes a commented settings template to path unless a
// file already exists there. It reports whether a file was created.
func CreateDefaultAt(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(defaultSettings), 0o644); err != nil {
		return false, fmt.Errorf("failed to write settings file: %w", err)
	}

	return true, nil
}
