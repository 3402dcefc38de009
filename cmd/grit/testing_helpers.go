package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// TestHelper runs grit commands in-process against a temporary workspace.
type TestHelper struct {
	t        *testing.T
	RepoPath string
}

// NewTestHelper creates a workspace and isolates the config files and
// identity variables from the developer's environment.
func NewTestHelper(t *testing.T) *TestHelper {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("GIT_AUTHOR_NAME", "Test Author")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_AUTHOR_DATE", "1234567890 +0000")
	t.Setenv("GIT_COMMITTER_NAME", "Test Author")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_DATE", "1234567890 +0000")

	return &TestHelper{t: t, RepoPath: t.TempDir()}
}

// Run executes grit with args inside the workspace and returns stdout.
func (th *TestHelper) Run(args ...string) (string, error) {
	th.t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"-C", th.RepoPath}, args...))

	err := cmd.Execute()
	return out.String(), err
}

// MustRun is Run that fails the test on error.
func (th *TestHelper) MustRun(args ...string) string {
	th.t.Helper()
	out, err := th.Run(args...)
	if err != nil {
		th.t.Fatalf("grit %v: %v", args, err)
	}
	return out
}

// WriteFile creates a workspace file with content.
func (th *TestHelper) WriteFile(name, content string) string {
	th.t.Helper()

	filePath := filepath.Join(th.RepoPath, name)
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		th.t.Fatalf("failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(filePath, []byte(content), 0o644); err != nil {
		th.t.Fatalf("failed to write file %s: %v", filePath, err)
	}
	return filePath
}
