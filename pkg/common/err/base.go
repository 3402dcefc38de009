package err

import (
	"errors"
	"strings"
)

// Error is the base error held by every package-level error type in grit.
//
// Package errors add their own domain fields on top of it (the offending path,
// the object hash, the ref file) while Code stays the value callers branch on.
// errors.Is matches two base errors when their codes are equal, so a caller can
// test for a kind without knowing which package produced it:
//
//	if errors.Is(err, err.Kind(err.CodeIO)) { ... }
type Error struct {
	// Package is the originating package ("objects", "store", "refs", ...).
	Package string

	// Code is the machine-readable kind of failure. See the Code* constants.
	Code string

	// Op is the operation that failed ("encode", "write", "read_head", ...).
	Op string

	// Message is a short human-readable description.
	Message string

	// Err is the wrapped cause, nil for leaf errors.
	Err error
}

// Error formats as: [package][code] op: message: cause
func (e *Error) Error() string {
	var parts []string

	var prefix strings.Builder
	if e.Package != "" {
		prefix.WriteString("[")
		prefix.WriteString(e.Package)
		prefix.WriteString("]")
	}
	if e.Code != "" {
		prefix.WriteString("[")
		prefix.WriteString(e.Code)
		prefix.WriteString("]")
	}
	if prefix.Len() > 0 {
		parts = append(parts, prefix.String())
	}
	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}

	result := strings.Join(parts, ": ")
	if e.Err != nil {
		if result != "" {
			result += ": " + e.Err.Error()
		} else {
			result = e.Err.Error()
		}
	}
	return result
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a base error with the same non-empty code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

// New creates a base error.
func New(pkg, code, op, message string, err error) *Error {
	return &Error{
		Package: pkg,
		Code:    code,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// Kind returns a code-only sentinel usable as an errors.Is target.
func Kind(code string) *Error {
	return &Error{Code: code}
}

// Error codes shared across grit packages.
const (
	// CodeEncoding marks input that cannot be canonically encoded, such as a
	// tree path containing a NUL byte.
	CodeEncoding = "ENCODING"

	// CodeDuplicatePath marks a tree built from two entries with the same
	// canonical path.
	CodeDuplicatePath = "DUPLICATE_PATH"

	// CodeMissingIdentity marks a commit attempted with an empty author or
	// committer name or email.
	CodeMissingIdentity = "MISSING_IDENTITY"

	// CodeIO marks any filesystem failure.
	CodeIO = "IO"

	// CodeRefCorruption marks a ref file whose content is not a valid object id.
	CodeRefCorruption = "REF_CORRUPTION"

	// CodeNotFound marks a missing object or repository.
	CodeNotFound = "NOT_FOUND"

	// CodeInvalidInput marks invalid caller arguments.
	CodeInvalidInput = "INVALID_INPUT"

	// CodeInvalidFormat marks stored data that does not parse.
	CodeInvalidFormat = "INVALID_FORMAT"

	// CodeCorrupt marks an object whose content does not hash to its id.
	CodeCorrupt = "CORRUPT"

	// CodeConfig marks a configuration source that could not be loaded.
	CodeConfig = "CONFIG"
)

// IsCode reports whether any base error in err's chain has the given code.
func IsCode(err error, code string) bool {
	return errors.Is(err, Kind(code))
}

// GetCode extracts the code of the first base error in err's chain.
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetPackage extracts the package of the first base error in err's chain.
func GetPackage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Package
	}
	return ""
}

// GetOp extracts the operation of the first base error in err's chain.
func GetOp(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Op
	}
	return ""
}
