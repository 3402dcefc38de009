package scpath

import (
	"path/filepath"
	"strings"
)

// RelativePath is a slash-separated path relative to the repository root,
// e.g. "README" or "docs/guide.md".
type RelativePath string

func (rp RelativePath) String() string {
	return string(rp)
}

// Normalize converts to forward slashes, cleans the path and drops a leading "./".
func (rp RelativePath) Normalize() RelativePath {
	normalized := filepath.ToSlash(filepath.Clean(filepath.FromSlash(string(rp))))
	return RelativePath(strings.TrimPrefix(normalized, "./"))
}

// Components splits the path into its elements.
func (rp RelativePath) Components() []string {
	n := rp.Normalize()
	if n == "" || n == "." {
		return nil
	}
	return strings.Split(string(n), "/")
}

// Base returns the last element.
func (rp RelativePath) Base() string {
	parts := rp.Components()
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}
