package sourcerepo

import (
	"path/filepath"

	"github.com/utkarsh5026/grit/pkg/common/err"
	"github.com/utkarsh5026/grit/pkg/common/fileops"
	"github.com/utkarsh5026/grit/pkg/repository/scpath"
)

// FindRepository walks up from startPath to the filesystem root and opens the
// first directory holding a .git directory. It fails with a NOT_FOUND error
// when none does.
func FindRepository(startPath scpath.RepositoryPath, opts ...Option) (*SourceRepository, error) {
	root, e := Locate(startPath)
	if e != nil {
		return nil, e
	}
	return newSourceRepository(root, opts)
}

// Locate returns the root of the repository containing startPath without
// opening it.
func Locate(startPath scpath.RepositoryPath) (scpath.RepositoryPath, error) {
	abs, e := filepath.Abs(startPath.String())
	if e != nil {
		return "", newRepoError(err.CodeIO, "find", startPath.String(), "", e)
	}

	current := abs
	for {
		repoPath := scpath.RepositoryPath(current)
		exists, e := RepositoryExists(repoPath)
		if e != nil {
			return "", e
		}
		if exists {
			return repoPath, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", newRepoError(err.CodeNotFound, "find", abs, "not a grit repository (or any parent up to the filesystem root)", nil)
		}
		current = parent
	}
}

// RepositoryExists reports whether path holds a .git directory.
func RepositoryExists(path scpath.RepositoryPath) (bool, error) {
	ok, e := fileops.IsDirectory(path.SourcePath().ToAbsolutePath())
	if e != nil {
		return false, newRepoError(err.CodeIO, "exists", path.SourcePath().String(), "", e)
	}
	return ok, nil
}

// Open opens the repository rooted exactly at path.
func Open(path scpath.RepositoryPath, opts ...Option) (*SourceRepository, error) {
	exists, e := RepositoryExists(path)
	if e != nil {
		return nil, e
	}
	if !exists {
		return nil, newRepoError(err.CodeNotFound, "open", path.String(), "not a grit repository", nil)
	}
	return newSourceRepository(path, opts)
}
