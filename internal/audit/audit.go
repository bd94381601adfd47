// Package audit keeps an append-only journal of ruleset rewrites.
package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gosimple/slug"

	"github.com/aidanlsb/orgmap/internal/rewrite"
)

// Operations recorded in the journal.
const (
	OpRemapSources      = "remap-sources"
	OpRemapDestinations = "remap-destinations"
)

// Entry represents a single journal entry.
type Entry struct {
	Timestamp time.Time        `json:"ts"`
	Operation string           `json:"op"`
	Ruleset   string           `json:"ruleset"`
	Value     string           `json:"value"` // new source dir or destination base
	Count     int              `json:"count"`
	Backup    string           `json:"backup,omitempty"`
	Changes   []rewrite.Change `json:"changes,omitempty"`
}

// Logger handles writing to the journal of one ruleset.
type Logger struct {
	path    string
	ruleset string
	enabled bool
	mu      sync.Mutex
}

// New creates a journal for rulesetPath under stateDir.
// If enabled is false, the logger will be a no-op.
func New(stateDir, rulesetPath string, enabled bool) *Logger {
	if !enabled {
		return &Logger{ruleset: rulesetPath, enabled: false}
	}
	return &Logger{
		path:    PathFor(stateDir, rulesetPath),
		ruleset: rulesetPath,
		enabled: true,
	}
}

// PathFor returns the journal file used for rulesetPath. Each ruleset gets
// its own file named after a slug of its path.
func PathFor(stateDir, rulesetPath string) string {
	name := slug.Make(filepath.ToSlash(rulesetPath))
	if name == "" {
		name = "ruleset"
	}
	return filepath.Join(stateDir, "journal", name+".jsonl")
}

// Path returns the journal file, or "" when disabled.
func (l *Logger) Path() string {
	return l.path
}

// Log writes an entry to the journal.
func (l *Logger) Log(entry Entry) error {
	if !l.enabled {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	if entry.Ruleset == "" {
		entry.Ruleset = l.ruleset
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal journal entry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write journal entry: %w", err)
	}

	return nil
}

// LogRemap records one saved rewrite pass.
func (l *Logger) LogRemap(op, value, backup string, res rewrite.Result) error {
	return l.Log(Entry{
		Operation: op,
		Value:     value,
		Count:     res.Count,
		Backup:    backup,
		Changes:   res.Changes,
	})
}

// Read reads all entries from the journal, oldest first.
func (l *Logger) Read() ([]Entry, error) {
	if !l.enabled {
		return nil, nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	var entries []Entry
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue // Skip malformed entries
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan journal: %w", err)
	}

	return entries, nil
}

// ReadSince reads entries from the journal since the given time.
func (l *Logger) ReadSince(since time.Time) ([]Entry, error) {
	all, err := l.Read()
	if err != nil {
		return nil, err
	}

	var filtered []Entry
	for _, entry := range all {
		if !entry.Timestamp.Before(since) {
			filtered = append(filtered, entry)
		}
	}

	return filtered, nil
}

// Tail returns the newest n entries, newest first. n <= 0 returns all.
func (l *Logger) Tail(n int) ([]Entry, error) {
	all, err := l.Read()
	if err != nil {
		return nil, err
	}
	if n > 0 && len(all) > n {
		all = all[len(all)-n:]
	}
	out := make([]Entry, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		out = append(out, all[i])
	}
	return out, nil
}

// Enabled returns true if the journal is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}
