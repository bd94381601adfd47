// Package testutil provides reusable test utilities for orgmap integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Workspace is a temporary directory holding a ruleset, an optional
// settings file and the state directory the CLI journals into.
type Workspace struct {
	Path string
	t    *testing.T

	ruleset  string
	settings string
	files    map[string]string
}

// NewWorkspace creates a new workspace builder.
// Call Build() to create the actual directory.
func NewWorkspace(t *testing.T) *Workspace {
	t.Helper()
	return &Workspace{
		t:     t,
		files: make(map[string]string),
	}
}

// WithRuleset sets the organize.yaml content.
func (w *Workspace) WithRuleset(yaml string) *Workspace {
	w.ruleset = yaml
	return w
}

// WithSettings sets the settings.toml content.
func (w *Workspace) WithSettings(toml string) *Workspace {
	w.settings = toml
	return w
}

// WithFile adds a file relative to the workspace root.
func (w *Workspace) WithFile(path, content string) *Workspace {
	w.files[path] = content
	return w
}

// Build creates the directory and every configured file.
func (w *Workspace) Build() *Workspace {
	w.t.Helper()

	w.Path = w.t.TempDir()
	if w.ruleset != "" {
		w.writeFile("organize.yaml", w.ruleset)
	}
	if w.settings != "" {
		w.writeFile("settings.toml", w.settings)
	}
	for path, content := range w.files {
		w.writeFile(path, content)
	}
	return w
}

// RulesetPath is the absolute path of the workspace ruleset.
func (w *Workspace) RulesetPath() string {
	return filepath.Join(w.Path, "organize.yaml")
}

// SettingsPath is the absolute path of the workspace settings file. It may
// not exist.
func (w *Workspace) SettingsPath() string {
	return filepath.Join(w.Path, "settings.toml")
}

func (w *Workspace) writeFile(relPath, content string) {
	w.t.Helper()
	fullPath := filepath.Join(w.Path, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		w.t.Fatalf("failed to create directory for %s: %v", fullPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		w.t.Fatalf("failed to write file %s: %v", fullPath, err)
	}
}

// ReadFile reads a file relative to the workspace root.
func (w *Workspace) ReadFile(relPath string) string {
	w.t.Helper()
	content, err := os.ReadFile(filepath.Join(w.Path, relPath))
	if err != nil {
		w.t.Fatalf("failed to read file %s: %v", relPath, err)
	}
	return string(content)
}

// FileExists checks if a file exists in the workspace.
func (w *Workspace) FileExists(relPath string) bool {
	w.t.Helper()
	_, err := os.Stat(filepath.Join(w.Path, relPath))
	return err == nil
}

// Sample rulesets shared by integration tests.

// LegacyRuleset points at an old source and an old destination tree.
func LegacyRuleset() string {
	return `rules:
  - name: pdfs
    locations: ~/Downloads
    actions:
      - move: /old/Organized/Documents/PDF/
  - name: logs
    locations:
      - ~/Desktop
    actions:
      - move:
          dest: /old/Cleanup/Logs/
          on_conflict: skip
`
}
