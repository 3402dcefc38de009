package commitmanager

import (
	"fmt"

	"github.com/utkarsh5026/grit/pkg/common/err"
)

const pkgName = "commitmanager"

var (
	// ErrEmptyMessage indicates an empty commit message was provided
	ErrEmptyMessage = err.New(pkgName, err.CodeInvalidInput, "validate", "commit message cannot be empty", nil)

	// ErrNoIdentity indicates CommitOptions carried no identity source.
	ErrNoIdentity = err.New(pkgName, err.CodeMissingIdentity, "validate", "no identity source", nil)
)

// DuplicatePathError means two tree inputs canonicalize to the same path.
type DuplicatePathError struct {
	base *err.Error
	// Path is the canonical path that appeared twice.
	Path string
}

// NewDuplicatePathError creates a DuplicatePathError for path.
func NewDuplicatePathError(path string) *DuplicatePathError {
	return &DuplicatePathError{
		base: err.New(pkgName, err.CodeDuplicatePath, "build_tree", "duplicate path", nil),
		Path: path,
	}
}

func (e *DuplicatePathError) Error() string {
	return fmt.Sprintf("%s [path=%s]", e.base.Error(), e.Path)
}

func (e *DuplicatePathError) Unwrap() error {
	return e.base
}

// IsDuplicatePath reports whether e is a DuplicatePathError.
func IsDuplicatePath(e error) bool {
	return err.IsCode(e, err.CodeDuplicatePath)
}

// CommitError is a failed step of the commit pipeline. The code of the
// underlying error is preserved, so errors.Is still matches, say, a
// MissingIdentityError.
type CommitError struct {
	Op      string // Operation that failed
	Err     error  // Underlying error
	Details string // Additional details
}

// Error implements the error interface
func (e *CommitError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("commit %s: %v (%s)", e.Op, e.Err, e.Details)
	}
	return fmt.Sprintf("commit %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *CommitError) Unwrap() error {
	return e.Err
}

// NewCommitError creates a new CommitError
func NewCommitError(op string, cause error, details string) error {
	return &CommitError{
		Op:      op,
		Err:     cause,
		Details: details,
	}
}
