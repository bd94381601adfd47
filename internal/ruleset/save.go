package ruleset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aidanlsb/orgmap/internal/atomicfile"
)

// SaveOptions controls how Save writes the document.
type SaveOptions struct {
	// Backup keeps the previous file contents at path + BackupSuffix.
	Backup bool
}

// BackupSuffix is appended to the ruleset path for the pre-save copy.
const BackupSuffix = ".bak"

// Save writes the document to path atomically. It returns the backup path,
// or "" when no backup was taken.
func Save(path string, doc *Document, opts SaveOptions) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("ruleset path is required")
	}
	data, err := doc.Encode()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create ruleset directory: %w", err)
	}
	var backup string
	if opts.Backup {
		if backup, err = atomicfile.Backup(path, BackupSuffix); err != nil {
			return "", fmt.Errorf("back up ruleset %s: %w", path, err)
		}
	}
	if err := atomicfile.WriteFile(path, data, 0); err != nil {
		return "", fmt.Errorf("write ruleset %s: %w", path, err)
	}
	return backup, nil
}
