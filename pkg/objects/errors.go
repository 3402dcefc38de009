package objects

import (
	"fmt"

	"github.com/utkarsh5026/grit/pkg/common/err"
)

const pkgName = "objects"

// EncodingError reports input that has no canonical encoding: a tree path
// containing NUL, an empty path, an invalid child id or a bad length.
type EncodingError struct {
	base *err.Error
	Path string
}

// NewEncodingError creates an EncodingError for the given operation.
func NewEncodingError(op, path, message string) *EncodingError {
	return &EncodingError{
		base: err.New(pkgName, err.CodeEncoding, op, message, nil),
		Path: path,
	}
}

func (e *EncodingError) Error() string {
	if e.Path == "" {
		return e.base.Error()
	}
	return fmt.Sprintf("%s [path=%q]", e.base.Error(), e.Path)
}

func (e *EncodingError) Unwrap() error {
	return e.base
}

// MissingIdentityError reports an author or committer without a name or email.
type MissingIdentityError struct {
	base  *err.Error
	Role  string // "author" or "committer"
	Field string // "name" or "email"
}

// NewMissingIdentityError creates a MissingIdentityError.
func NewMissingIdentityError(role, field string) *MissingIdentityError {
	return &MissingIdentityError{
		base: err.New(pkgName, err.CodeMissingIdentity, "build_commit",
			fmt.Sprintf("%s %s is empty", role, field), nil),
		Role:  role,
		Field: field,
	}
}

func (e *MissingIdentityError) Error() string {
	return e.base.Error()
}

func (e *MissingIdentityError) Unwrap() error {
	return e.base
}

// FormatError reports serialized bytes that do not decode as an object.
type FormatError struct {
	base *err.Error
}

// NewFormatError creates a FormatError, optionally wrapping a cause.
func NewFormatError(op, message string, cause error) *FormatError {
	return &FormatError{base: err.New(pkgName, err.CodeInvalidFormat, op, message, cause)}
}

func (e *FormatError) Error() string {
	return e.base.Error()
}

func (e *FormatError) Unwrap() error {
	return e.base
}

// IsEncoding reports whether e is an EncodingError.
func IsEncoding(e error) bool {
	return err.IsCode(e, err.CodeEncoding)
}

// IsMissingIdentity reports whether e is a MissingIdentityError.
func IsMissingIdentity(e error) bool {
	return err.IsCode(e, err.CodeMissingIdentity)
}
