package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aidanlsb/orgmap/internal/atomicfile"
)

type persistedConfig struct {
	Ruleset         *string              `toml:"ruleset,omitempty"`
	DefaultSource   *string              `toml:"default_source,omitempty"`
	DefaultDestBase *string              `toml:"default_dest_base,omitempty"`
	Backup          *bool                `toml:"backup"`
	Journal         *bool                `toml:"journal"`
	StateDir        *string              `toml:"state_dir,omitempty"`
	UI              *persistedUISettings `toml:"ui,omitempty"`
}

type persistedUISettings struct {
	Accent *string `toml:"accent,omitempty"`
}

func nonEmptyPtr(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// SaveTo writes the settings to a specific path atomically. Empty values
// are left out so defaults keep applying.
func SaveTo(path string, cfg *Config) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("settings path is required")
	}
	if cfg == nil {
		cfg = &Config{}
	}

	out := persistedConfig{
		Ruleset:         nonEmptyPtr(cfg.Ruleset),
		DefaultSource:   nonEmptyPtr(cfg.DefaultSource),
		DefaultDestBase: nonEmptyPtr(cfg.DefaultDestBase),
		Backup:          cfg.Backup,
		Journal:         cfg.Journal,
		StateDir:        nonEmptyPtr(cfg.StateDir),
	}
	if accent := nonEmptyPtr(cfg.UI.Accent); accent != nil {
		out.UI = &persistedUISettings{Accent: accent}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := atomicfile.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}

	return nil
}
