// Package fsutil wraps the file system operations the converter needs:
// writing UTF-8 text with directory creation, and handling the read-only
// attribute of existing target files.
package fsutil

import (
	"os"
	"path/filepath"
)

// WriteText writes content to path as UTF-8, creating the parent directory
// tree if absent. An existing file is truncated.
func WriteText(path, content string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// Exists reports whether path refers to an existing file.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsReadOnly reports whether the file at path exists and lacks the user
// write permission bit.
func IsReadOnly(path string) (bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return fi.Mode().Perm()&0o200 == 0, nil
}

// ClearReadOnly restores the user write permission bit on path.
func ClearReadOnly(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.Chmod(path, fi.Mode()|0o200)
}
