package fileops

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/utkarsh5026/grit/pkg/repository/scpath"
)

func TestAtomicWrite_Success(t *testing.T) {
	target := filepath.Join(t.TempDir(), "object")

	if err := AtomicWrite(scpath.AbsolutePath(target), []byte("blob 0\x00"), 0o444); err != nil {
		t.Fatalf("AtomicWrite failed: %v", err)
	}

	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(content) != "blob 0\x00" {
		t.Errorf("content = %q", content)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(target)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode().Perm() != 0o444 {
			t.Errorf("mode = %v, want 0444", info.Mode().Perm())
		}
	}
}

func TestAtomicWrite_OverwritesReadOnlyTarget(t *testing.T) {
	target := filepath.Join(t.TempDir(), "HEAD")
	if err := os.WriteFile(target, []byte("old\n"), 0o444); err != nil {
		t.Fatal(err)
	}

	if err := AtomicWrite(scpath.AbsolutePath(target), []byte("new\n"), 0o644); err != nil {
		t.Fatalf("AtomicWrite failed: %v", err)
	}
	content, _ := os.ReadFile(target)
	if string(content) != "new\n" {
		t.Errorf("content = %q, want %q", content, "new\n")
	}
}

func TestAtomicWrite_EmptyAndLarge(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string][]byte{
		"empty": {},
		"large": bytes.Repeat([]byte{0xAB}, 4<<20),
	} {
		target := filepath.Join(dir, name)
		if err := AtomicWrite(scpath.AbsolutePath(target), data, 0o644); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		got, err := os.ReadFile(target)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("%s: content mismatch (%d bytes, want %d)", name, len(got), len(data))
		}
	}
}

func TestAtomicWrite_MissingDirectory(t *testing.T) {
	target := filepath.Join(t.TempDir(), "missing", "file")
	if err := AtomicWrite(scpath.AbsolutePath(target), []byte("x"), 0o644); err == nil {
		t.Fatal("expected an error for a missing parent directory")
	}
}

func TestAtomicWrite_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		target := filepath.Join(dir, fmt.Sprintf("f%d", i))
		if err := AtomicWrite(scpath.AbsolutePath(target), []byte("data"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 5 {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected exactly the 5 targets, found %v", names)
	}
}

func TestAtomicWrite_ConcurrentSameContent(t *testing.T) {
	target := filepath.Join(t.TempDir(), "object")
	data := []byte("identical bytes")

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- AtomicWrite(scpath.AbsolutePath(target), data, 0o444)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Errorf("concurrent write: %v", err)
		}
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("content = %q", got)
	}
}
