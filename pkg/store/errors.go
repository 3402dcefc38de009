package store

import (
	"fmt"

	"github.com/utkarsh5026/grit/pkg/common/err"
)

const pkgName = "store"

// StoreError reports a failed object store operation. Filesystem failures
// carry err.CodeIO; a missing object carries err.CodeNotFound and an object
// whose bytes do not hash to its id carries err.CodeCorrupt.
type StoreError struct {
	base *err.Error
	Hash string
	Path string
}

func newStoreError(code, op, hash, path, message string, cause error) *StoreError {
	return &StoreError{
		base: err.New(pkgName, code, op, message, cause),
		Hash: hash,
		Path: path,
	}
}

// NewIOError wraps a filesystem failure.
func NewIOError(op, hash, path string, cause error) *StoreError {
	return newStoreError(err.CodeIO, op, hash, path, "", cause)
}

func (e *StoreError) Error() string {
	msg := e.base.Error()
	if e.Hash != "" {
		msg += fmt.Sprintf(" [object=%s]", e.Hash)
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" [path=%s]", e.Path)
	}
	return msg
}

func (e *StoreError) Unwrap() error {
	return e.base
}

// Code returns the error kind.
func (e *StoreError) Code() string {
	return e.base.Code
}

// IsIO reports whether e is a filesystem failure from the store.
func IsIO(e error) bool {
	return err.IsCode(e, err.CodeIO)
}

// IsNotFound reports whether e means the object does not exist.
func IsNotFound(e error) bool {
	return err.IsCode(e, err.CodeNotFound)
}

// IsCorrupt reports whether e means stored bytes failed verification.
func IsCorrupt(e error) bool {
	return err.IsCode(e, err.CodeCorrupt)
}
