// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fileutil provides file and path helpers shared across operations.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// CheckInput verifies that path exists and is a regular file.
func CheckInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("input file not found: %s", path)
		}
		return fmt.Errorf("checking input %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("input %s is a directory", path)
	}
	return nil
}

// EnsureOutputDir creates the parent directory of path if it is absent.
func EnsureOutputDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// RemoveIfExists deletes path if present, for cleaning up partial output
// after a failed operation. Removal errors are ignored.
func RemoveIfExists(path string) {
	if FileExists(path) {
		_ = os.Remove(path)
	}
}
