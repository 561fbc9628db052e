package fsutil

import (
	"os"
	"path/filepath"
)

// ResolvePath resolves path against root. Absolute paths are returned
// unchanged; an empty root means the current working directory.
func ResolvePath(root, path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}

	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		root = cwd
	}

	return filepath.Join(root, path), nil
}
