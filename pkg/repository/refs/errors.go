package refs

import (
	"fmt"

	"github.com/utkarsh5026/grit/pkg/common/err"
)

const pkgName = "refs"

// RefError reports a failure reading or writing a ref file. A ref whose
// content is not an object id carries err.CodeRefCorruption; filesystem
// failures carry err.CodeIO.
type RefError struct {
	base    *err.Error
	Path    string
	Content string
}

func newRefError(code, op, path, content, message string, cause error) *RefError {
	return &RefError{
		base:    err.New(pkgName, code, op, message, cause),
		Path:    path,
		Content: content,
	}
}

func (e *RefError) Error() string {
	msg := e.base.Error()
	if e.Path != "" {
		msg += fmt.Sprintf(" [ref=%s]", e.Path)
	}
	if e.Content != "" {
		msg += fmt.Sprintf(" [content=%q]", e.Content)
	}
	return msg
}

func (e *RefError) Unwrap() error {
	return e.base
}

// IsCorruption reports whether e means a ref file holds an invalid id.
func IsCorruption(e error) bool {
	return err.IsCode(e, err.CodeRefCorruption)
}
