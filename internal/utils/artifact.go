package utils

import (
	"os"
	"path/filepath"
)

// WriteArtifact stores one extracted code artifact on disk and returns the
// path it was written to. The directory is created if needed; an empty dir
// means the current working directory.
func WriteArtifact(dir, filename, content string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}
