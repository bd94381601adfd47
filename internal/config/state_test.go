package config

import (
	"path/filepath"
	"testing"
)

func TestResolveRulesetPath(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		cfg      *Config
		want     string
	}{
		{"flag wins", "cli.yaml", &Config{Ruleset: "settings.yaml"}, "cli.yaml"},
		{"settings value", "", &Config{Ruleset: "settings.yaml"}, "settings.yaml"},
		{"nil config", "", nil, DefaultRuleset},
		{"blank settings value", " ", &Config{Ruleset: "  "}, DefaultRuleset},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveRulesetPath(tc.explicit, tc.cfg); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveStateDir(t *testing.T) {
	settingsPath := "/Users/me/.config/orgmap/settings.toml"

	t.Run("absolute state_dir", func(t *testing.T) {
		got := ResolveStateDir(settingsPath, &Config{StateDir: "/var/tmp/orgmap"})
		if got != "/var/tmp/orgmap" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("relative state_dir", func(t *testing.T) {
		got := ResolveStateDir(settingsPath, &Config{StateDir: "runtime"})
		want := "/Users/me/.config/orgmap/runtime"
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})

	t.Run("home relative state_dir", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		got := ResolveStateDir(settingsPath, &Config{StateDir: "~/orgmap-state"})
		if got != filepath.Join(home, "orgmap-state") {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("fallback sibling state dir", func(t *testing.T) {
		got := ResolveStateDir(settingsPath, &Config{})
		want := "/Users/me/.config/orgmap/state"
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})
}

func TestResolveSettingsPath(t *testing.T) {
	if got := ResolveSettingsPath("/tmp/x.toml"); got != "/tmp/x.toml" {
		t.Fatalf("got %q", got)
	}
	if got := ResolveSettingsPath(""); got != DefaultPath() {
		t.Fatalf("got %q, want default path", got)
	}
}
