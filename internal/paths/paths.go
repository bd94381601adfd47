// Package paths normalizes user-supplied directory arguments.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
// Other paths, including "~user" forms, are returned unchanged.
func ExpandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	if p == "~" {
		return home, nil
	}
	return filepath.Join(home, p[2:]), nil
}

// ContractHome is the inverse of ExpandHome for display. Paths outside the
// home directory are returned unchanged.
func ContractHome(p string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" || home == "/" {
		return p
	}
	if p == home {
		return "~"
	}
	if strings.HasPrefix(p, home+string(filepath.Separator)) {
		return "~" + p[len(home):]
	}
	return p
}

// NormalizeDir expands "~" and drops trailing separators, keeping the root.
// The empty string stays empty.
func NormalizeDir(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", nil
	}
	expanded, err := ExpandHome(p)
	if err != nil {
		return "", err
	}
	trimmed := strings.TrimRight(expanded, "/")
	if trimmed == "" {
		return "/", nil
	}
	return trimmed, nil
}

// ResolveFile expands "~" in a file path and makes it absolute.
func ResolveFile(p string) (string, error) {
	expanded, err := ExpandHome(strings.TrimSpace(p))
	if err != nil {
		return "", err
	}
	if expanded == "" {
		return "", fmt.Errorf("path is required")
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", p, err)
	}
	return abs, nil
}
