// =============================================================================
// Sales Analytics System - File Utilities
// =============================================================================
//
// Shared helpers for output file management: directory creation and output
// file naming. Name formats support placeholders so runs can produce either
// fixed names (the default) or unique per-run names:
//
//   {uuid}      - a random UUID
//   {timestamp} - current timestamp (YYYYMMDD_HHMMSS)
//   {date}      - current date (YYYY-MM-DD)
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EnsureDirectories creates each directory (and parents) if missing.
func EnsureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GenerateOutputFileName expands the placeholders in a file name format.
// A format without placeholders is returned unchanged.
func GenerateOutputFileName(format string) string {
	now := time.Now()

	name := format
	name = strings.ReplaceAll(name, "{uuid}", uuid.NewString())
	name = strings.ReplaceAll(name, "{timestamp}", now.Format("20060102_150405"))
	name = strings.ReplaceAll(name, "{date}", now.Format("2006-01-02"))

	return name
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
