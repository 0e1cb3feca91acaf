package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateFolder creates every folder in paths, including parents.
func CreateFolder(paths ...string) error {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.MkdirAll(p, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", p, err)
		}
	}
	return nil
}

// ParentDir returns the directory holding a file path such as a sqlite database.
func ParentDir(file string) string {
	return filepath.Dir(file)
}
