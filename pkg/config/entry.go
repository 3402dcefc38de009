package config

import (
	"strconv"
	"strings"
)

// ConfigEntry is one key/value pair and where it came from.
type ConfigEntry struct {
	Key    string       // dotted key, e.g. "user.name"
	Value  string
	Level  ConfigLevel
	Source ConfigSource
}

// NewEntry creates a configuration entry.
func NewEntry(key, value string, level ConfigLevel, source ConfigSource) *ConfigEntry {
	return &ConfigEntry{Key: key, Value: value, Level: level, Source: source}
}

// AsString returns the value.
func (e *ConfigEntry) AsString() string {
	return e.Value
}

// AsInt converts the value to an int.
func (e *ConfigEntry) AsInt() (int, error) {
	val, err := strconv.Atoi(strings.TrimSpace(e.Value))
	if err != nil {
		return 0, NewConfigError("convert", CodeConversionErr, e.Key, "", e.Level.String(), err)
	}
	return val, nil
}

// AsList splits the value on commas, trimming and dropping empty items.
func (e *ConfigEntry) AsList() []string {
	parts := strings.Split(e.Value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// Clone returns a copy of the entry.
func (e *ConfigEntry) Clone() *ConfigEntry {
	c := *e
	return &c
}
