package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utkarsh5026/grit/pkg/repository/scpath"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newTestManager(t *testing.T, environ []string) (*Manager, string, string) {
	t.Helper()
	dir := t.TempDir()
	repo := filepath.Join(dir, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))
	user := filepath.Join(dir, "home", "config.json")

	m := NewManager(Options{
		RepositoryPath: scpath.RepositoryPath(repo),
		SystemPath:     "-",
		UserPath:       user,
		Environ:        environ,
	})
	return m, repo, user
}

func TestParser_Parse(t *testing.T) {
	content := []byte(`{
		// identity
		"User": {"name": "Jane Doe", "email": "jane@example.com"},
		"core": {"ignore": ["target", "node_modules"], "compression": 9, "bare": false},
	}`)

	entries, err := (&Parser{}).Parse(content, "test.json", UserLevel)
	require.NoError(t, err)

	require.Len(t, entries["user.name"], 1)
	assert.Equal(t, "Jane Doe", entries["user.name"][0].Value)
	assert.Equal(t, UserLevel, entries["user.name"][0].Level)
	require.Len(t, entries["core.ignore"], 2)
	assert.Equal(t, "node_modules", entries["core.ignore"][1].Value)
	assert.Equal(t, "9", entries["core.compression"][0].Value)
	assert.Equal(t, "false", entries["core.bare"][0].Value)
}

func TestParser_ParseInvalid(t *testing.T) {
	_, err := (&Parser{}).Parse([]byte(`{"user": `), "bad.json", UserLevel)
	require.Error(t, err)
	assert.True(t, IsInvalidFormat(err))

	entries, err := (&Parser{}).Parse([]byte("  \n"), "empty.json", UserLevel)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParser_SerializeRoundTrip(t *testing.T) {
	p := &Parser{}
	in := map[string][]*ConfigEntry{
		"user.name":   {NewEntry("user.name", "Jane", RepositoryLevel, "x")},
		"core.ignore": {NewEntry("core.ignore", "a", RepositoryLevel, "x"), NewEntry("core.ignore", "b", RepositoryLevel, "x")},
	}
	data, err := p.Serialize(in)
	require.NoError(t, err)

	out, err := p.Parse(data, "x", RepositoryLevel)
	require.NoError(t, err)
	assert.Equal(t, "Jane", out["user.name"][0].Value)
	require.Len(t, out["core.ignore"], 2)
}

func TestSplitKey(t *testing.T) {
	parts, err := SplitKey("user.name")
	require.NoError(t, err)
	assert.Equal(t, []string{"user", "name"}, parts)

	for _, key := range []string{"user", "user.", ".name", ""} {
		_, err := SplitKey(key)
		assert.True(t, IsInvalidKey(err), key)
	}
}

func TestParseEnviron(t *testing.T) {
	got := ParseEnviron([]string{
		"GIT_AUTHOR_NAME=Jane Doe",
		"GIT_COMMITTER_EMAIL=john@example.com",
		"GIT_DIR=/tmp/x",
		"HOME=/root",
		"GIT_AUTHOR_DATE=1609459200 +0530",
	})
	assert.Equal(t, map[string]string{
		"author.name":     "Jane Doe",
		"committer.email": "john@example.com",
		"author.date":     "1609459200 +0530",
	}, got)
}

func TestManager_Precedence(t *testing.T) {
	m, repo, user := newTestManager(t, []string{"GIT_USER_EMAIL=env@example.com"})
	writeFile(t, user, `{"user": {"name": "User Level", "email": "user@example.com"}}`)
	writeFile(t, filepath.Join(repo, ".git", "grit.json"), `{"user": {"name": "Repo Level"}}`)
	require.NoError(t, m.Load(context.Background()))

	assert.Equal(t, "Repo Level", m.GetString("user.name"))
	assert.Equal(t, "env@example.com", m.GetString("user.email"))
	assert.Equal(t, ".git", m.GetString("core.ignore"))

	require.NoError(t, m.SetCommandLine("user.name", "Flag"))
	entry := m.Get("USER.NAME")
	require.NotNil(t, entry)
	assert.Equal(t, "Flag", entry.Value)
	assert.Equal(t, CommandLineLevel, entry.Level)

	all := m.GetAll("user.name")
	require.Len(t, all, 3)
	assert.Equal(t, []ConfigLevel{CommandLineLevel, RepositoryLevel, UserLevel},
		[]ConfigLevel{all[0].Level, all[1].Level, all[2].Level})
}

func TestManager_LoadMissingFiles(t *testing.T) {
	m, _, _ := newTestManager(t, []string{})
	require.NoError(t, m.Load(context.Background()))
	assert.Nil(t, m.Get("user.name"))
}

func TestManager_LoadMalformedFile(t *testing.T) {
	m, _, user := newTestManager(t, []string{})
	writeFile(t, user, `{"user": [`)
	err := m.Load(context.Background())
	require.Error(t, err)
	assert.True(t, IsInvalidFormat(err))
}

func TestManager_SetPersists(t *testing.T) {
	m, repo, _ := newTestManager(t, []string{})
	require.NoError(t, m.Load(context.Background()))
	require.NoError(t, m.Set("user.name", "Saved", RepositoryLevel))

	again := NewManager(Options{RepositoryPath: scpath.RepositoryPath(repo), SystemPath: "-", UserPath: "-", Environ: []string{}})
	require.NoError(t, again.Load(context.Background()))
	assert.Equal(t, "Saved", again.GetString("user.name"))

	repoFile := filepath.Join(repo, ".git", "grit.json")
	assert.FileExists(t, repoFile)

	require.NoError(t, again.Unset("user.name", RepositoryLevel))
	assert.Nil(t, again.Get("user.name"))
	assert.NoFileExists(t, repoFile)

	err := m.Set("user.name", "x", EnvironmentLevel)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestManager_List(t *testing.T) {
	m, _, _ := newTestManager(t, []string{"GIT_AUTHOR_NAME=Jane"})
	require.NoError(t, m.Load(context.Background()))

	var keys []string
	for _, e := range m.List() {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"author.name", "core.compression", "core.ignore"}, keys)
}

func TestTypedConfig_Identity(t *testing.T) {
	m, _, user := newTestManager(t, []string{
		"GIT_AUTHOR_NAME=Jane Doe",
		"GIT_AUTHOR_DATE=1609459200 +0530",
	})
	writeFile(t, user, `{"user": {"name": "Fallback", "email": "fallback@example.com"}}`)
	require.NoError(t, m.Load(context.Background()))
	tc := NewTypedConfig(m)

	author, err := tc.Author()
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", author.Name)
	assert.Equal(t, "fallback@example.com", author.Email)
	assert.Equal(t, int64(1609459200), author.When.Unix())
	_, offset := author.When.Zone()
	assert.Equal(t, 5*3600+30*60, offset)

	committer, err := tc.Committer()
	require.NoError(t, err)
	assert.Equal(t, "Fallback", committer.Name)
	assert.True(t, committer.When.IsZero())
}

func TestTypedConfig_BadDate(t *testing.T) {
	m, _, _ := newTestManager(t, []string{"GIT_COMMITTER_DATE=yesterday-ish"})
	require.NoError(t, m.Load(context.Background()))

	_, err := NewTypedConfig(m).Committer()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConversion)
}

func TestTypedConfig_IgnoreNames(t *testing.T) {
	m, repo, _ := newTestManager(t, []string{})
	require.NoError(t, m.Load(context.Background()))
	tc := NewTypedConfig(m)
	assert.Equal(t, []string{".git"}, tc.IgnoreNames())

	writeFile(t, filepath.Join(repo, ".git", "grit.json"), `{"core": {"ignore": [".git", "build"]}}`)
	require.NoError(t, m.Load(context.Background()))
	assert.Equal(t, []string{".git", "build"}, tc.IgnoreNames())

	require.NoError(t, m.SetCommandLine("core.ignore", ".git, dist"))
	assert.Equal(t, []string{".git", "dist"}, tc.IgnoreNames())
}

func TestTypedConfig_CompressionLevel(t *testing.T) {
	m, _, _ := newTestManager(t, []string{})
	require.NoError(t, m.Load(context.Background()))
	tc := NewTypedConfig(m)
	assert.Equal(t, -1, tc.CompressionLevel())

	require.NoError(t, m.SetCommandLine("core.compression", "9"))
	assert.Equal(t, 9, tc.CompressionLevel())

	require.NoError(t, m.SetCommandLine("core.compression", "42"))
	assert.Equal(t, -1, tc.CompressionLevel())
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in     string
		unix   int64
		offset int
	}{
		{"1609459200 +0530", 1609459200, 19800},
		{"@1609459260 -0800", 1609459260, -28800},
		{"1234567890", 1234567890, 0},
		{"2021-01-01T00:00:00Z", 1609459200, 0},
		{"2021-01-01 05:30:00 +0530", 1609459200, 19800},
		{"Fri, 01 Jan 2021 00:00:00 +0000", 1609459200, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.unix, got.Unix())
			_, offset := got.Zone()
			assert.Equal(t, tt.offset, offset)
		})
	}

	for _, bad := range []string{"", "tomorrow", "1609459200 +05", "1609459200 0530"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrConversion, bad)
	}
}
