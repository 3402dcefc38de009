package workdir

import (
	"fmt"

	"github.com/utkarsh5026/grit/pkg/common/err"
)

// WorkdirError is a failure while scanning or reading the working directory.
type WorkdirError struct {
	base *err.Error
	// Path is the file or directory involved.
	Path string
}

// NewWorkdirError wraps cause as an IO failure of op on path.
func NewWorkdirError(op, path string, cause error) *WorkdirError {
	return &WorkdirError{
		base: err.New("workdir", err.CodeIO, op, "", cause),
		Path: path,
	}
}

// Error implements the error interface
func (e *WorkdirError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [path=%s]", e.base.Error(), e.Path)
	}
	return e.base.Error()
}

func (e *WorkdirError) Unwrap() error {
	return e.base
}
