package config

import (
	"log/slog"
	"sync"

	"github.com/utkarsh5026/grit/pkg/common/fileops"
	"github.com/utkarsh5026/grit/pkg/repository/scpath"
)

// Store is one JSON config file at a given level.
type Store struct {
	mu      sync.RWMutex
	path    scpath.AbsolutePath
	level   ConfigLevel
	entries map[string][]*ConfigEntry
	parser  *Parser
	log     *slog.Logger
}

// NewStore creates a store for path. Nothing is read until Load.
func NewStore(path scpath.AbsolutePath, level ConfigLevel, log *slog.Logger) *Store {
	return &Store{
		path:    path,
		level:   level,
		entries: make(map[string][]*ConfigEntry),
		parser:  &Parser{},
		log:     log,
	}
}

// Path returns the file behind the store.
func (s *Store) Path() scpath.AbsolutePath {
	return s.path
}

// Level returns the store's level.
func (s *Store) Level() ConfigLevel {
	return s.level
}

// Load reads the file. A missing file is an empty configuration.
func (s *Store) Load() error {
	content, found, err := fileops.ReadBytes(s.path)
	if err != nil {
		return NewConfigError("load", CodeLoadErr, "", s.path.String(), s.level.String(), err)
	}
	if !found {
		s.log.Debug("config file not present", "level", s.level.String(), "path", s.path.String())
		s.replace(make(map[string][]*ConfigEntry))
		return nil
	}

	entries, err := s.parser.Parse(content, NewFileSource(s.path), s.level)
	if err != nil {
		return err
	}
	s.log.Debug("loaded config file", "level", s.level.String(), "path", s.path.String(), "keys", len(entries))
	s.replace(entries)
	return nil
}

func (s *Store) replace(entries map[string][]*ConfigEntry) {
	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
}

// Save writes the store back to its file atomically. A store with no keys
// left removes its file.
func (s *Store) Save() error {
	s.mu.RLock()
	empty := len(s.entries) == 0
	content, err := s.parser.Serialize(s.entries)
	s.mu.RUnlock()
	if err != nil {
		return err
	}

	if empty {
		if err := fileops.SafeRemove(s.path); err != nil {
			return NewConfigError("save", CodeLoadErr, "", s.path.String(), s.level.String(), err)
		}
		s.log.Debug("removed empty config file", "level", s.level.String(), "path", s.path.String())
		return nil
	}

	if err := fileops.EnsureParentDir(s.path); err != nil {
		return NewConfigError("save", CodeLoadErr, "", s.path.String(), s.level.String(), err)
	}
	if err := fileops.AtomicWrite(s.path, content, 0o644); err != nil {
		return NewConfigError("save", CodeLoadErr, "", s.path.String(), s.level.String(), err)
	}
	return nil
}

// GetEntries returns copies of the entries for key.
func (s *Store) GetEntries(key string) []*ConfigEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.entries[NormalizeKey(key)]
	result := make([]*ConfigEntry, len(entries))
	for i, e := range entries {
		result[i] = e.Clone()
	}
	return result
}

// Keys returns every key present in the store.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys
}

// Set replaces all values of key with value.
func (s *Store) Set(key, value string) error {
	if _, err := SplitKey(key); err != nil {
		return err
	}
	key = NormalizeKey(key)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = []*ConfigEntry{NewEntry(key, value, s.level, NewFileSource(s.path))}
	return nil
}

// Unset removes key.
func (s *Store) Unset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, NormalizeKey(key))
}
