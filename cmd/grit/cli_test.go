package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const readmeCommit = "1796bee7ba9f91e8796fa643571545205d6ac4c0"

func TestInitCommand(t *testing.T) {
	th := NewTestHelper(t)

	out := th.MustRun("init")
	assert.Contains(t, out, "Initialized empty Git repository")

	for _, dir := range []string{".git", ".git/objects", ".git/refs"} {
		info, err := os.Stat(filepath.Join(th.RepoPath, filepath.FromSlash(dir)))
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir())
	}

	out = th.MustRun("init")
	assert.Contains(t, out, "Reinitialized existing Git repository")
}

func TestInitCommandWithDirectory(t *testing.T) {
	th := NewTestHelper(t)

	th.MustRun("init", "nested/project")
	_, err := os.Stat(filepath.Join(th.RepoPath, "nested", "project", ".git", "objects"))
	assert.NoError(t, err)
}

func TestCommitCommand(t *testing.T) {
	th := NewTestHelper(t)
	th.MustRun("init")
	th.WriteFile("README", "This is the README")

	out := th.MustRun("commit", "-m", "First commit")
	assert.Contains(t, out, readmeCommit[:7])
	assert.Contains(t, out, "root-commit")
	assert.Contains(t, out, "First commit")

	assert.Equal(t, readmeCommit+"\n", th.MustRun("rev-parse", "HEAD"))

	head, err := os.ReadFile(filepath.Join(th.RepoPath, ".git", "HEAD"))
	require.NoError(t, err)
	assert.Equal(t, readmeCommit+"\n", string(head))
}

func TestCommitCommandEmptyWorkspace(t *testing.T) {
	th := NewTestHelper(t)
	th.MustRun("init")

	out := th.MustRun("commit", "-m", "Nothing")
	assert.Contains(t, out, "0 file(s)")
	assert.Contains(t, out, "committed the empty tree")

	tree := th.MustRun("cat-file", "-p", "HEAD")
	assert.Contains(t, tree, "tree 4b825dc642cb6eb9a060e54bf8d69288fbee4904")
}

func TestCommitCommandRequiresMessage(t *testing.T) {
	th := NewTestHelper(t)
	th.MustRun("init")

	_, err := th.Run("commit")
	require.Error(t, err)
}

func TestCommitCommandMissingIdentity(t *testing.T) {
	th := NewTestHelper(t)
	th.MustRun("init")
	th.WriteFile("README", "This is the README")
	t.Setenv("GIT_AUTHOR_NAME", "")

	_, err := th.Run("commit", "-m", "nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MISSING_IDENTITY")

	_, statErr := os.Stat(filepath.Join(th.RepoPath, ".git", "HEAD"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestCommitCommandOutsideRepository(t *testing.T) {
	th := NewTestHelper(t)

	_, err := th.Run("commit", "-m", "x")
	if err == nil {
		t.Skip("temp directory is inside a repository")
	}
	assert.Contains(t, err.Error(), "not a grit repository")
}

func TestConfigOverridesIdentity(t *testing.T) {
	th := NewTestHelper(t)
	th.MustRun("init")
	th.WriteFile("README", "This is the README")

	th.MustRun("-c", "author.name=Flag Author", "commit", "-m", "flagged")
	out := th.MustRun("cat-file", "-p", "HEAD")
	assert.Contains(t, out, "author Flag Author <test@example.com> 1234567890 +0000")
	assert.Contains(t, out, "committer Test Author <test@example.com> 1234567890 +0000")
}

func TestCatFileCommand(t *testing.T) {
	th := NewTestHelper(t)
	th.MustRun("init")
	th.WriteFile("README", "This is the README")
	th.MustRun("commit", "-m", "First commit")

	assert.Equal(t, "commit\n", th.MustRun("cat-file", "-t", "HEAD"))
	assert.Equal(t, "173\n", th.MustRun("cat-file", "-s", readmeCommit))

	tree := th.MustRun("cat-file", "-p", "d563e95f9546ba7708a37dc1d61f82a1b4bbcf14")
	assert.Equal(t, "100644 blob eedf7e9cbf58c283913a70a5462988a0b5ee0052\tREADME\n", tree)

	blob := th.MustRun("cat-file", "-p", "eedf7e9cbf58c283913a70a5462988a0b5ee0052")
	assert.Equal(t, "This is the README", blob)

	_, err := th.Run("cat-file", "HEAD")
	assert.Error(t, err)
	_, err = th.Run("cat-file", "-t", "0000000000000000000000000000000000000000")
	assert.Error(t, err)
}

func TestRevParseWithoutCommits(t *testing.T) {
	th := NewTestHelper(t)
	th.MustRun("init")

	_, err := th.Run("rev-parse", "HEAD")
	assert.ErrorIs(t, err, errNoHead)
}

func TestLogCommand(t *testing.T) {
	th := NewTestHelper(t)
	th.MustRun("init")

	assert.Contains(t, th.MustRun("log"), "No commits yet")

	th.WriteFile("README", "This is the README")
	th.MustRun("commit", "-m", "First commit")
	t.Setenv("GIT_AUTHOR_DATE", "1234567900 +0000")
	t.Setenv("GIT_COMMITTER_DATE", "1234567900 +0000")
	th.MustRun("commit", "-m", "Second commit")

	out := th.MustRun("log")
	first := strings.Index(out, "Second commit")
	second := strings.Index(out, "First commit")
	require.True(t, first >= 0 && second >= 0, out)
	assert.Less(t, first, second, "newest commit comes first")
	assert.Contains(t, out, "06be4f7136b9d8fda6f81589c4895b332b137a19")

	out = th.MustRun("log", "-n", "1", "--table")
	assert.Contains(t, out, "06be4f7")
	assert.NotContains(t, out, "1796bee")
}

func TestConfigCommand(t *testing.T) {
	th := NewTestHelper(t)
	th.MustRun("init")

	out := th.MustRun("config", "core.ignore", ".git,build")
	assert.Contains(t, out, filepath.Join(".git", "grit.json"))
	assert.Equal(t, ".git,build\n", th.MustRun("config", "core.ignore"))

	data, err := os.ReadFile(filepath.Join(th.RepoPath, ".git", "grit.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ignore": ".git,build"`)

	list := th.MustRun("config", "--list")
	assert.Contains(t, list, "core.ignore")
	assert.Contains(t, list, "author.name")

	th.MustRun("config", "--unset", "core.ignore")
	assert.Equal(t, ".git\n", th.MustRun("config", "core.ignore"))

	_, err = th.Run("config", "no-dot")
	assert.Error(t, err)
}

func TestCommitHonorsConfiguredIgnore(t *testing.T) {
	th := NewTestHelper(t)
	th.MustRun("init")
	th.WriteFile("a.txt", "a")
	th.WriteFile("b.txt", "b")
	th.WriteFile("build.log", "noise")
	th.MustRun("config", "core.ignore", ".git, build.log")

	th.MustRun("commit", "-m", "files")
	out := th.MustRun("cat-file", "-p", "HEAD")
	assert.Contains(t, out, "tree 4e2fd0b481a785eb99cab80ec1c582e1caf6cb44\n")
}

func TestLogLevelFlagValidation(t *testing.T) {
	th := NewTestHelper(t)
	_, err := th.Run("--log-level", "loud", "init")
	assert.Error(t, err)
}

func TestErrorAttrs(t *testing.T) {
	th := NewTestHelper(t)
	th.MustRun("init")

	_, e := th.Run("cat-file", "-p", strings.Repeat("a", 40))
	require.Error(t, e)
	attrs := errorAttrs(e)
	require.Len(t, attrs, 6)
	assert.Equal(t, []any{"package", "store", "op", "read"}, attrs[:4])
	assert.Equal(t, "NOT_FOUND", attrs[5])

	assert.Nil(t, errorAttrs(errors.New("plain")))
}
