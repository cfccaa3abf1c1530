// Package utils holds small helpers shared by the log services.
package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hyp3rd/ewrap"
)

// SecurePath resolves a log file path inside the system temporary directory.
// Relative paths are joined onto it. Paths that end up outside it, directly
// or through a symlink, are rejected.
func SecurePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ewrap.New("path cannot be empty")
	}

	base := filepath.Clean(os.TempDir())

	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(base, full)
	}

	full = filepath.Clean(full)

	if !within(base, full) {
		return "", ewrap.New("path escapes the temporary directory").WithMetadata("path", path)
	}

	resolved, err := filepath.EvalSymlinks(full)
	if err != nil {
		// Files that do not exist yet are created by the caller.
		return full, nil
	}

	resolvedBase, err := filepath.EvalSymlinks(base)
	if err != nil {
		resolvedBase = base
	}

	if !within(resolvedBase, resolved) {
		return "", ewrap.New("path resolves outside the temporary directory").WithMetadata("path", path)
	}

	return full, nil
}

func within(base, path string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
