package config

import (
	"path/filepath"
	"strings"

	"github.com/aidanlsb/orgmap/internal/paths"
)

// ResolveSettingsPath resolves the effective settings path from an optional override.
func ResolveSettingsPath(explicitPath string) string {
	if strings.TrimSpace(explicitPath) != "" {
		return explicitPath
	}
	return DefaultPath()
}

// ResolveRulesetPath picks the ruleset file with precedence:
//  1. explicit --ruleset flag
//  2. cfg.Ruleset from settings.toml
//  3. DefaultRuleset in the working directory
func ResolveRulesetPath(explicitPath string, cfg *Config) string {
	if p := strings.TrimSpace(explicitPath); p != "" {
		return p
	}
	if cfg != nil {
		if p := strings.TrimSpace(cfg.Ruleset); p != "" {
			return p
		}
	}
	return DefaultRuleset
}

// ResolveStateDir resolves the directory holding the journal with precedence:
//  1. cfg.StateDir (relative to the settings file dir when not absolute)
//  2. a "state" directory next to the settings file
func ResolveStateDir(settingsPath string, cfg *Config) string {
	settingsDir := filepath.Dir(ResolveSettingsPath(settingsPath))

	if cfg != nil {
		if fromConfig := strings.TrimSpace(cfg.StateDir); fromConfig != "" {
			if expanded, err := paths.ExpandHome(fromConfig); err == nil {
				fromConfig = expanded
			}
			if isAbsolutePath(fromConfig) {
				return filepath.Clean(filepath.FromSlash(fromConfig))
			}
			return filepath.Join(settingsDir, filepath.FromSlash(fromConfig))
		}
	}

	return filepath.Join(settingsDir, "state")
}

func isAbsolutePath(p string) bool {
	if filepath.IsAbs(p) {
		return true
	}
	// Treat slash-rooted config values as absolute on every OS.
	return strings.HasPrefix(filepath.ToSlash(strings.TrimSpace(p)), "/")
}
