package config

import (
	"fmt"

	"github.com/utkarsh5026/grit/pkg/common/err"
)

const (
	pkgName = "config"

	CodeInvalidFormatErr = err.CodeInvalidFormat
	CodeLoadErr          = err.CodeConfig
	CodeConversionErr    = "CONVERSION_FAILED"
	CodeInvalidLevelErr  = "INVALID_LEVEL"
	CodeInvalidKeyErr    = "INVALID_KEY"
)

// ConfigError is a configuration failure with the key, file and level involved.
type ConfigError struct {
	base  *err.Error
	Path  string
	Key   string
	Level string
}

// NewConfigError creates a ConfigError.
func NewConfigError(op, code, key, path, level string, underlying error) *ConfigError {
	return &ConfigError{
		base:  err.New(pkgName, code, op, "", underlying),
		Path:  path,
		Key:   key,
		Level: level,
	}
}

// NewInvalidFormatError reports a config file that does not parse.
func NewInvalidFormatError(op, path string, underlying error) *ConfigError {
	return NewConfigError(op, CodeInvalidFormatErr, "", path, "", underlying)
}

func (e *ConfigError) Error() string {
	msg := e.base.Error()
	if e.Key != "" {
		msg += fmt.Sprintf(" [key=%s]", e.Key)
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" [path=%s]", e.Path)
	}
	if e.Level != "" {
		msg += fmt.Sprintf(" [level=%s]", e.Level)
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.base
}

var (
	ErrInvalidFormat = err.New(pkgName, CodeInvalidFormatErr, "", "invalid configuration format", nil)
	ErrInvalidLevel  = err.New(pkgName, CodeInvalidLevelErr, "", "invalid configuration level", nil)
	ErrInvalidKey    = err.New(pkgName, CodeInvalidKeyErr, "", "keys have the form section.name", nil)
	ErrConversion    = err.New(pkgName, CodeConversionErr, "", "configuration value conversion failed", nil)
)

// IsInvalidFormat reports whether e is a parse failure.
func IsInvalidFormat(e error) bool {
	return err.IsCode(e, CodeInvalidFormatErr)
}

// IsInvalidKey reports whether e is a malformed key.
func IsInvalidKey(e error) bool {
	return err.IsCode(e, CodeInvalidKeyErr)
}
