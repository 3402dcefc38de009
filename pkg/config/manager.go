package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/utkarsh5026/grit/pkg/common/logger"
	"github.com/utkarsh5026/grit/pkg/repository/scpath"
)

// Default configuration locations.
const (
	WindowsSystemConfigDir = `C:\ProgramData\grit`
	UnixSystemConfigDir    = "/etc/grit"
	ConfigFileName         = "config.json"
)

// Manager merges configuration from every level. The highest-precedence
// level holding a key wins. It is safe for concurrent use.
type Manager struct {
	mu              sync.RWMutex
	stores          map[ConfigLevel]*Store
	commandLine     map[string]string
	environment     map[string]string
	builtinDefaults map[string]string
	log             *slog.Logger
}

// Options locate the config sources. Zero values pick the defaults.
type Options struct {
	// RepositoryPath enables the repository level (.git/grit.json).
	RepositoryPath scpath.RepositoryPath

	// SystemPath and UserPath override the file locations. Set to "-" to
	// disable a level.
	SystemPath string
	UserPath   string

	// Environ is the process environment; nil means os.Environ().
	Environ []string

	Logger *slog.Logger
}

// NewManager creates a manager. Call Load before reading values.
func NewManager(opts Options) *Manager {
	log := opts.Logger
	if log == nil {
		log = logger.Component("config")
	}
	environ := opts.Environ
	if environ == nil {
		environ = os.Environ()
	}

	m := &Manager{
		stores:          make(map[ConfigLevel]*Store),
		commandLine:     make(map[string]string),
		environment:     ParseEnviron(environ),
		builtinDefaults: make(map[string]string),
		log:             log,
	}
	m.initializeStores(opts)
	m.loadBuiltinDefaults()
	return m
}

// Load reads every config file concurrently.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	for _, store := range m.stores {
		s := store
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return s.Load()
		})
	}
	return g.Wait()
}

// Get returns the effective entry for key, or nil.
func (m *Manager) Get(key string) *ConfigEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.getUnsafe(NormalizeKey(key))
}

// GetString returns the effective value of key, or "" when unset.
func (m *Manager) GetString(key string) string {
	if e := m.Get(key); e != nil {
		return e.Value
	}
	return ""
}

// GetAll returns the entries for key from every level, highest first.
func (m *Manager) GetAll(key string) []*ConfigEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	key = NormalizeKey(key)

	var all []*ConfigEntry
	if v, ok := m.commandLine[key]; ok {
		all = append(all, NewEntry(key, v, CommandLineLevel, CommandLineSource))
	}
	if v, ok := m.environment[key]; ok {
		all = append(all, NewEntry(key, v, EnvironmentLevel, EnvironmentSource))
	}
	for _, level := range fileLevels {
		if s, ok := m.stores[level]; ok {
			all = append(all, s.GetEntries(key)...)
		}
	}
	if v, ok := m.builtinDefaults[key]; ok {
		all = append(all, NewEntry(key, v, BuiltinLevel, BuiltinSource))
	}
	return all
}

// SetCommandLine records a --config override.
func (m *Manager) SetCommandLine(key, value string) error {
	if _, err := SplitKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commandLine[NormalizeKey(key)] = value
	return nil
}

// Set writes key=value to the file of a file-backed level.
func (m *Manager) Set(key, value string, level ConfigLevel) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	store, err := m.fileStore("set", key, level)
	if err != nil {
		return err
	}
	if err := store.Set(key, value); err != nil {
		return err
	}
	return store.Save()
}

// Unset removes key from the file of a file-backed level.
func (m *Manager) Unset(key string, level ConfigLevel) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	store, err := m.fileStore("unset", key, level)
	if err != nil {
		return err
	}
	store.Unset(key)
	return store.Save()
}

// List returns the effective entry of every known key, sorted by key.
func (m *Manager) List() []*ConfigEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make(map[string]struct{})
	for k := range m.commandLine {
		keys[k] = struct{}{}
	}
	for k := range m.environment {
		keys[k] = struct{}{}
	}
	for _, s := range m.stores {
		for _, k := range s.Keys() {
			keys[k] = struct{}{}
		}
	}
	for k := range m.builtinDefaults {
		keys[k] = struct{}{}
	}

	entries := make([]*ConfigEntry, 0, len(keys))
	for k := range keys {
		if e := m.getUnsafe(k); e != nil {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

// GetStore returns the store of a file-backed level, or nil.
func (m *Manager) GetStore(level ConfigLevel) *Store {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stores[level]
}

var fileLevels = []ConfigLevel{RepositoryLevel, UserLevel, SystemLevel}

func (m *Manager) fileStore(op, key string, level ConfigLevel) (*Store, error) {
	store, ok := m.stores[level]
	if !level.IsFile() || !ok {
		return nil, NewConfigError(op, CodeInvalidLevelErr, key, "", level.String(),
			fmt.Errorf("%w: no config file at this level", ErrInvalidLevel))
	}
	return store, nil
}

func (m *Manager) initializeStores(opts Options) {
	systemPath := opts.SystemPath
	if systemPath == "" {
		systemPath = defaultSystemConfigPath()
	}
	if systemPath != "-" {
		m.stores[SystemLevel] = NewStore(scpath.AbsolutePath(systemPath), SystemLevel, m.log)
	}

	userPath := opts.UserPath
	if userPath == "" {
		userPath = defaultUserConfigPath()
	}
	if userPath != "-" && userPath != "" {
		m.stores[UserLevel] = NewStore(scpath.AbsolutePath(userPath), UserLevel, m.log)
	}

	if opts.RepositoryPath != "" {
		repoConfig := opts.RepositoryPath.SourcePath().ConfigPath().ToAbsolutePath()
		m.stores[RepositoryLevel] = NewStore(repoConfig, RepositoryLevel, m.log)
	}
}

func defaultSystemConfigPath() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(WindowsSystemConfigDir, ConfigFileName)
	}
	return filepath.Join(UnixSystemConfigDir, ConfigFileName)
}

func defaultUserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "grit", ConfigFileName)
}

func (m *Manager) loadBuiltinDefaults() {
	m.builtinDefaults["core.ignore"] = ".git"
	m.builtinDefaults["core.compression"] = "-1"
}

func (m *Manager) getUnsafe(key string) *ConfigEntry {
	if v, ok := m.commandLine[key]; ok {
		return NewEntry(key, v, CommandLineLevel, CommandLineSource)
	}
	if v, ok := m.environment[key]; ok {
		return NewEntry(key, v, EnvironmentLevel, EnvironmentSource)
	}
	for _, level := range fileLevels {
		s, ok := m.stores[level]
		if !ok {
			continue
		}
		if entries := s.GetEntries(key); len(entries) > 0 {
			return entries[len(entries)-1]
		}
	}
	if v, ok := m.builtinDefaults[key]; ok {
		return NewEntry(key, v, BuiltinLevel, BuiltinSource)
	}
	return nil
}
