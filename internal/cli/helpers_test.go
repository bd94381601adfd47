package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aidanlsb/orgmap/internal/config"
)

var captureStdoutMu sync.Mutex

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	captureStdoutMu.Lock()
	defer captureStdoutMu.Unlock()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	os.Stdout = w

	outputCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		var buf bytes.Buffer
		_, copyErr := io.Copy(&buf, r)
		_ = r.Close()
		if copyErr != nil {
			errCh <- copyErr
			return
		}
		outputCh <- buf.String()
	}()

	fn()

	os.Stdout = orig
	_ = w.Close()
	select {
	case err := <-errCh:
		t.Fatalf("io.Copy: %v", err)
		return ""
	case output := <-outputCh:
		return output
	}
}

// useCLIState points the package globals at a temporary ruleset, settings
// file and state dir, restoring the previous values when the test ends.
func useCLIState(t *testing.T, rulesetPath string) {
	t.Helper()

	prevRuleset, prevSettings, prevState := resolvedRulesetPath, resolvedSettingsPath, resolvedStateDir
	prevExist, prevCfg, prevJSON := settingsExist, cfg, jsonOutput
	prevSource, prevDest := remapSource, remapDestBase
	prevInteractive, prevDryRun, prevYes, prevNoBackup := remapInteractive, remapDryRun, remapYes, remapNoBackup
	t.Cleanup(func() {
		resolvedRulesetPath, resolvedSettingsPath, resolvedStateDir = prevRuleset, prevSettings, prevState
		settingsExist, cfg, jsonOutput = prevExist, prevCfg, prevJSON
		remapSource, remapDestBase = prevSource, prevDest
		remapInteractive, remapDryRun, remapYes, remapNoBackup = prevInteractive, prevDryRun, prevYes, prevNoBackup
	})

	dir := t.TempDir()
	resolvedRulesetPath = rulesetPath
	resolvedSettingsPath = filepath.Join(dir, "settings.toml")
	resolvedStateDir = filepath.Join(dir, "state")
	settingsExist = false
	cfg = &config.Config{}
	jsonOutput = false
	remapSource, remapDestBase = "", ""
	remapInteractive, remapDryRun, remapYes, remapNoBackup = false, false, false, false
}

func writeRuleset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "organize.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
