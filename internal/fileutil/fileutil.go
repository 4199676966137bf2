// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyPath   = errors.New("path cannot be empty")
	ErrPathIsDir   = errors.New("path is a directory")
	ErrNameInvalid = errors.New("file name contains path separator or null byte")
)

// File permission constants.
const (
	DirPermissions  = 0o750 // rwxr-x---
	FilePermissions = 0o644 // rw-r--r--
)

// WriteFileAtomic writes data to path through a temp file in the same
// directory followed by a rename, so readers never observe a partial document.
// Parent directories are created as needed.
func WriteFileAtomic(path string, data []byte) error {
	if path == "" {
		return ErrEmptyPath
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s", ErrPathIsDir, path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".report2docx-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, FilePermissions); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// ValidateFileName checks that name is a bare file name safe to join to a directory.
func ValidateFileName(name string) error {
	if name == "" {
		return ErrEmptyPath
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return ErrNameInvalid
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
//
// Examples:
//   - "clinic" -> false (config name)
//   - "./clinic.yaml" -> true
//   - "/etc/report2docx/clinic.yaml" -> true
//   - "C:\config\clinic.yaml" -> true
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// ReplaceExt swaps the extension of path for ext (which includes the dot).
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
