package sourcerepo

import (
	"fmt"

	"github.com/utkarsh5026/grit/pkg/common/err"
)

// RepoError is a failure locating, opening or creating a repository.
type RepoError struct {
	base *err.Error
	Path string
}

func newRepoError(code, op, path, message string, cause error) *RepoError {
	return &RepoError{
		base: err.New("sourcerepo", code, op, message, cause),
		Path: path,
	}
}

func (e *RepoError) Error() string {
	return fmt.Sprintf("%s [path=%s]", e.base.Error(), e.Path)
}

func (e *RepoError) Unwrap() error {
	return e.base
}

// IsNotRepository reports whether e means no repository was found.
func IsNotRepository(e error) bool {
	return err.IsCode(e, err.CodeNotFound)
}
