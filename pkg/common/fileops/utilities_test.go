package fileops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/utkarsh5026/grit/pkg/repository/scpath"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{dir, true},
		{file, true},
		{filepath.Join(dir, "missing"), false},
	}
	for _, tt := range tests {
		got, err := Exists(scpath.AbsolutePath(tt.path))
		if err != nil {
			t.Fatalf("Exists(%s): %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("Exists(%s) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestEnsureDirAndParent(t *testing.T) {
	dir := t.TempDir()
	nested := scpath.AbsolutePath(filepath.Join(dir, "objects", "ee"))

	if err := EnsureDir(nested); err != nil {
		t.Fatal(err)
	}
	// idempotent
	if err := EnsureDir(nested); err != nil {
		t.Fatal(err)
	}
	if ok, _ := IsDirectory(nested); !ok {
		t.Fatalf("%s was not created", nested)
	}

	file := scpath.AbsolutePath(filepath.Join(dir, "a", "b", "c"))
	if err := EnsureParentDir(file); err != nil {
		t.Fatal(err)
	}
	if ok, _ := IsDirectory(file.Dir()); !ok {
		t.Fatalf("%s was not created", file.Dir())
	}
}

func TestReadBytesAndString(t *testing.T) {
	dir := t.TempDir()
	missing := scpath.AbsolutePath(filepath.Join(dir, "missing"))

	data, ok, err := ReadBytes(missing)
	if err != nil || ok || data != nil {
		t.Fatalf("ReadBytes(missing) = %v, %v, %v", data, ok, err)
	}
	s, err := ReadString(missing)
	if err != nil || s != "" {
		t.Fatalf("ReadString(missing) = %q, %v", s, err)
	}

	present := filepath.Join(dir, "HEAD")
	if err := os.WriteFile(present, []byte("  abc\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err = ReadString(scpath.AbsolutePath(present))
	if err != nil || s != "abc" {
		t.Fatalf("ReadString = %q, %v", s, err)
	}
}

func TestIsDirectoryOnFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	ok, err := IsDirectory(scpath.AbsolutePath(file))
	if err != nil || ok {
		t.Fatalf("IsDirectory(file) = %v, %v", ok, err)
	}
}

func TestSafeRemove(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := SafeRemove(scpath.AbsolutePath(file)); err != nil {
		t.Fatal(err)
	}
	if err := SafeRemove(scpath.AbsolutePath(file)); err != nil {
		t.Fatalf("removing a missing file should succeed: %v", err)
	}
}
