// Package fileutils provides the file operations around a run: existence
// checks, directory creation, and archiving a consumed export with
// filename-conflict resolution.
package fileutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disciplemakers/VIS-to-FA/internal/logging"
	"github.com/disciplemakers/VIS-to-FA/internal/models"
)

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists.
func DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist.
func EnsureDirectoryExists(path string) error {
	if DirectoryExists(path) {
		return nil
	}
	if err := os.MkdirAll(path, models.PermissionDirectory); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// ArchiveFile copies src into destDir, keeping the base name. When a file
// of that name already exists, " (n)" is appended before the extension,
// with n counting up from 1 until a free name is found. Returns the final
// archive path.
func ArchiveFile(src, destDir string, log logging.Logger) (string, error) {
	if !FileExists(src) {
		return "", fmt.Errorf("file does not exist: %s", src)
	}
	if err := EnsureDirectoryExists(destDir); err != nil {
		return "", err
	}

	dest := filepath.Join(destDir, filepath.Base(src))
	ext := filepath.Ext(dest)
	stem := strings.TrimSuffix(dest, ext)
	for n := 1; FileExists(dest); n++ {
		dest = fmt.Sprintf("%s (%d)%s", stem, n, ext)
	}

	if err := copyFile(src, dest); err != nil {
		return "", err
	}

	log.Info("Archived export", logging.F("from", src), logging.F("to", dest))
	return dest, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src) // #nosec G304 -- CLI tool archives user-provided paths
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, models.PermissionOutputFile) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to create archive copy: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy file: %w", err)
	}
	return out.Close()
}
