package main

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runGit executes git in dir with a fixed identity and dates.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test Author",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_AUTHOR_DATE=1234567890 +0000",
		"GIT_COMMITTER_NAME=Test Author",
		"GIT_COMMITTER_EMAIL=test@example.com",
		"GIT_COMMITTER_DATE=1234567890 +0000",
		"GIT_CONFIG_NOSYSTEM=1",
		"GIT_CONFIG_GLOBAL="+os.DevNull,
	)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
	return string(out)
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func TestGitReadsGritObjects(t *testing.T) {
	requireGit(t)
	th := NewTestHelper(t)
	th.MustRun("init")
	th.WriteFile("README", "This is the README")
	th.MustRun("commit", "-m", "First commit")

	assert.Equal(t, readmeCommit+"\n", runGit(t, th.RepoPath, "rev-parse", "HEAD"))
	assert.Equal(t, "This is the README", runGit(t, th.RepoPath, "cat-file", "-p", "HEAD:README"))
	runGit(t, th.RepoPath, "fsck", "--strict")
}

func TestGritMatchesGitCommit(t *testing.T) {
	requireGit(t)

	gitDir := t.TempDir()
	runGit(t, gitDir, "init", "-q")
	require.NoError(t, os.WriteFile(gitDir+"/README", []byte("This is the README"), 0o644))
	runGit(t, gitDir, "add", "README")
	runGit(t, gitDir, "commit", "-q", "-m", "First commit")
	want := strings.TrimSpace(runGit(t, gitDir, "rev-parse", "HEAD"))

	th := NewTestHelper(t)
	th.MustRun("init")
	th.WriteFile("README", "This is the README")
	th.MustRun("commit", "-m", "First commit")

	assert.Equal(t, want, strings.TrimSpace(th.MustRun("rev-parse", "HEAD")))
}

func TestGritReadsGitObjects(t *testing.T) {
	requireGit(t)

	th := NewTestHelper(t)
	runGit(t, th.RepoPath, "init", "-q")
	th.WriteFile("README", "This is the README")
	runGit(t, th.RepoPath, "add", "README")
	runGit(t, th.RepoPath, "commit", "-q", "-m", "First commit")

	// git leaves HEAD as a symbolic ref to the branch
	assert.Equal(t, readmeCommit+"\n", th.MustRun("rev-parse", "HEAD"))
	assert.Equal(t, "commit\n", th.MustRun("cat-file", "-t", "HEAD"))

	th.WriteFile("b.txt", "b")
	t.Setenv("GIT_AUTHOR_DATE", "1234567900 +0000")
	t.Setenv("GIT_COMMITTER_DATE", "1234567900 +0000")
	th.MustRun("commit", "-m", "Second commit")

	log := runGit(t, th.RepoPath, "log", "--format=%s")
	assert.Equal(t, "Second commit\nFirst commit\n", log)
}
