package config

import (
	"time"
)

// Identity is a configured author or committer. A zero When means "now".
type Identity struct {
	Name  string
	Email string
	When  time.Time
}

// TypedConfig provides typed access to the keys grit reads.
type TypedConfig struct {
	manager *Manager
}

// NewTypedConfig wraps manager.
func NewTypedConfig(manager *Manager) *TypedConfig {
	return &TypedConfig{
		manager: manager,
	}
}

// Author resolves author.name, author.email and author.date, falling back to
// user.name and user.email.
func (tc *TypedConfig) Author() (Identity, error) {
	return tc.identity("author")
}

// Committer resolves committer.name, committer.email and committer.date,
// falling back to user.name and user.email.
func (tc *TypedConfig) Committer() (Identity, error) {
	return tc.identity("committer")
}

func (tc *TypedConfig) identity(role string) (Identity, error) {
	id := Identity{
		Name:  tc.firstOf(role+".name", "user.name"),
		Email: tc.firstOf(role+".email", "user.email"),
	}

	entry := tc.manager.Get(role + ".date")
	if entry == nil || entry.Value == "" {
		return id, nil
	}
	when, err := ParseDate(entry.Value)
	if err != nil {
		return Identity{}, NewConfigError("identity", CodeConversionErr, entry.Key, entry.Source.String(), entry.Level.String(), err)
	}
	id.When = when
	return id, nil
}

func (tc *TypedConfig) firstOf(keys ...string) string {
	for _, key := range keys {
		if entry := tc.manager.Get(key); entry != nil && entry.Value != "" {
			return entry.Value
		}
	}
	return ""
}

// IgnoreNames returns the workspace names excluded from commits. Entries of
// the winning level are combined; each may hold a comma-separated list.
func (tc *TypedConfig) IgnoreNames() []string {
	all := tc.manager.GetAll("core.ignore")
	if len(all) == 0 {
		return []string{}
	}

	winner := all[0].Level
	var names []string
	for _, entry := range all {
		if entry.Level != winner {
			break
		}
		names = append(names, entry.AsList()...)
	}
	return names
}

// CompressionLevel returns core.compression with git's meaning (0 stores
// objects uncompressed), or -1 (zlib default) when unset or out of range.
func (tc *TypedConfig) CompressionLevel() int {
	entry := tc.manager.Get("core.compression")
	if entry == nil {
		return -1
	}
	val, err := entry.AsInt()
	if err != nil || val < -1 || val > 9 {
		return -1
	}
	return val
}
