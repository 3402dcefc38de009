package fileops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/utkarsh5026/grit/pkg/repository/scpath"
)

// Exists reports whether anything exists at p. Only errors other than
// non-existence are returned.
func Exists(p scpath.AbsolutePath) (bool, error) {
	_, err := os.Stat(p.String())
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("check existence: %w", err)
}

// EnsureDir creates p and its parents if needed.
func EnsureDir(p scpath.AbsolutePath) error {
	if err := os.MkdirAll(p.String(), 0o755); err != nil {
		return fmt.Errorf("ensure directory %s: %w", p, err)
	}
	return nil
}

// EnsureParentDir creates the directory that will hold p.
func EnsureParentDir(p scpath.AbsolutePath) error {
	return EnsureDir(p.Dir())
}

// ReadBytes reads an optional file. A missing file yields nil, false, nil.
func ReadBytes(p scpath.AbsolutePath) ([]byte, bool, error) {
	data, err := os.ReadFile(p.String())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read file: %w", err)
	}
	return data, true, nil
}

// ReadString reads an optional file and trims surrounding whitespace. A
// missing file yields an empty string.
func ReadString(p scpath.AbsolutePath) (string, error) {
	data, _, err := ReadBytes(p)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// IsDirectory reports whether p exists and is a directory.
func IsDirectory(p scpath.AbsolutePath) (bool, error) {
	info, err := os.Stat(p.String())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat path: %w", err)
	}
	return info.IsDir(), nil
}

// SafeRemove removes p, ignoring a missing file.
func SafeRemove(p scpath.AbsolutePath) error {
	if err := os.Remove(p.String()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}
