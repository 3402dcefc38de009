package scpath

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RepositoryPath is the absolute path of a workspace root, the directory that
// contains .git.
type RepositoryPath string

// AbsolutePath is any absolute filesystem path.
type AbsolutePath string

// NewRepositoryPath resolves path to an absolute RepositoryPath.
func NewRepositoryPath(path string) (RepositoryPath, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve repository path: %w", err)
	}
	return RepositoryPath(abs), nil
}

func (rp RepositoryPath) String() string {
	return string(rp)
}

// IsValid reports whether rp is absolute.
func (rp RepositoryPath) IsValid() bool {
	return filepath.IsAbs(string(rp))
}

// Join joins elements onto the repository root.
func (rp RepositoryPath) Join(elem ...string) AbsolutePath {
	return AbsolutePath(filepath.Join(append([]string{string(rp)}, elem...)...))
}

// SourcePath returns the .git directory of the repository.
func (rp RepositoryPath) SourcePath() SourcePath {
	return SourcePath(filepath.Join(string(rp), SourceDir))
}

// Canonicalize turns a workspace path into the form stored in trees: relative
// to the root, forward slashes, no leading separator. Absolute paths must lie
// inside the root and relative paths must not climb out of it; "/a" under a
// root other than "/" is an error, not "a".
func (rp RepositoryPath) Canonicalize(path string) (RelativePath, error) {
	p := path
	if filepath.IsAbs(p) {
		rel, err := filepath.Rel(string(rp), p)
		if err != nil {
			return "", fmt.Errorf("path %q is not under %s: %w", path, rp, err)
		}
		p = rel
	}

	rel := RelativePath(p).Normalize()
	s := strings.TrimLeft(string(rel), "/")
	if s == "" || s == "." {
		return "", fmt.Errorf("path %q names the repository root", path)
	}
	if s == ".." || strings.HasPrefix(s, "../") {
		return "", fmt.Errorf("path %q is outside the repository", path)
	}
	return RelativePath(s), nil
}

func (ap AbsolutePath) String() string {
	return string(ap)
}

// Dir returns the parent directory.
func (ap AbsolutePath) Dir() AbsolutePath {
	return AbsolutePath(filepath.Dir(string(ap)))
}

// Base returns the last path element.
func (ap AbsolutePath) Base() string {
	return filepath.Base(string(ap))
}
