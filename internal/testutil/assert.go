package testutil

import (
	"strings"
	"testing"
)

// AssertFileExists checks that a file exists in the workspace.
func (w *Workspace) AssertFileExists(relPath string) {
	w.t.Helper()
	if !w.FileExists(relPath) {
		w.t.Errorf("expected file to exist: %s", relPath)
	}
}

// AssertFileNotExists checks that a file does not exist in the workspace.
func (w *Workspace) AssertFileNotExists(relPath string) {
	w.t.Helper()
	if w.FileExists(relPath) {
		w.t.Errorf("expected file to not exist: %s", relPath)
	}
}

// AssertFileContains checks that a file contains the given substring.
func (w *Workspace) AssertFileContains(relPath, substr string) {
	w.t.Helper()
	content := w.ReadFile(relPath)
	if !strings.Contains(content, substr) {
		w.t.Errorf("expected file %s to contain %q, got:\n%s", relPath, substr, content)
	}
}

// AssertFileNotContains checks that a file does not contain the given substring.
func (w *Workspace) AssertFileNotContains(relPath, substr string) {
	w.t.Helper()
	content := w.ReadFile(relPath)
	if strings.Contains(content, substr) {
		w.t.Errorf("expected file %s to not contain %q, got:\n%s", relPath, substr, content)
	}
}

// AssertHasWarning checks that the result contains a warning with the given code.
func (r *CLIResult) AssertHasWarning(t *testing.T, code string) {
	t.Helper()
	for _, w := range r.Warnings {
		if w.Code == code {
			return
		}
	}
	t.Errorf("expected warning with code %s, got warnings: %+v", code, r.Warnings)
}

// AssertNoWarnings checks that the result has no warnings.
func (r *CLIResult) AssertNoWarnings(t *testing.T) {
	t.Helper()
	if len(r.Warnings) > 0 {
		t.Errorf("expected no warnings, got: %+v", r.Warnings)
	}
}

// AssertCount checks the envelope's meta count.
func (r *CLIResult) AssertCount(t *testing.T, expected int) {
	t.Helper()
	if r.Meta == nil || r.Meta.Count != expected {
		t.Errorf("expected meta count %d, got %+v\nRaw: %s", expected, r.Meta, r.RawJSON)
	}
}
