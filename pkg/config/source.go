package config

import "github.com/utkarsh5026/grit/pkg/repository/scpath"

// ConfigSource names where an entry came from: a special source or a file path.
type ConfigSource string

const (
	CommandLineSource ConfigSource = "command-line"
	EnvironmentSource ConfigSource = "environment"
	BuiltinSource     ConfigSource = "builtin"
)

// NewFileSource creates a ConfigSource from a file path.
func NewFileSource(path scpath.AbsolutePath) ConfigSource {
	return ConfigSource(path.String())
}

func (s ConfigSource) String() string {
	return string(s)
}

// IsFile reports whether the source is a config file.
func (s ConfigSource) IsFile() bool {
	return s != "" && s != CommandLineSource && s != EnvironmentSource && s != BuiltinSource
}
