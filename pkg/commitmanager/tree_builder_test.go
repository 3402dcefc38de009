package commitmanager

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/utkarsh5026/grit/pkg/objects"
	"github.com/utkarsh5026/grit/pkg/repository/scpath"
)

const (
	blobA      objects.ObjectHash = "2e65efe2a145dda7ee51d1741299f848e5bf752e"
	blobB      objects.ObjectHash = "63d8dbd40c23542e740659a7168a0ce3138ea748"
	readmeBlob objects.ObjectHash = "eedf7e9cbf58c283913a70a5462988a0b5ee0052"
)

func testRoot(t *testing.T) scpath.RepositoryPath {
	t.Helper()
	root, err := scpath.NewRepositoryPath(t.TempDir())
	if err != nil {
		t.Fatalf("NewRepositoryPath() error = %v", err)
	}
	return root
}

func treeHash(t *testing.T, tree *objects.Tree) objects.ObjectHash {
	t.Helper()
	hash, _, err := objects.Hash(tree)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	return hash
}

func TestTreeBuilder_Empty(t *testing.T) {
	tb := NewTreeBuilder(testRoot(t))

	tree, err := tb.Build(nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := treeHash(t, tree); got != objects.EmptyTreeHash {
		t.Errorf("empty tree hash = %s, want %s", got, objects.EmptyTreeHash)
	}
}

func TestTreeBuilder_SortsAndCanonicalizes(t *testing.T) {
	root := testRoot(t)
	tb := NewTreeBuilder(root)

	tree, err := tb.Build([]TreeInput{
		{Path: root.Join("b.txt").String(), Hash: blobB},
		{Path: "a.txt", Hash: blobA},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	entries := tree.Entries()
	if len(entries) != 2 || entries[0].Path != "a.txt" || entries[1].Path != "b.txt" {
		t.Fatalf("entries = %+v, want a.txt then b.txt", entries)
	}
	for _, e := range entries {
		if e.Mode != objects.FileModeRegular {
			t.Errorf("mode of %s = %o, want 100644", e.Path, uint32(e.Mode))
		}
	}
	if got, want := treeHash(t, tree), objects.ObjectHash("4e2fd0b481a785eb99cab80ec1c582e1caf6cb44"); got != want {
		t.Errorf("tree hash = %s, want %s", got, want)
	}
}

func TestTreeBuilder_SingleReadme(t *testing.T) {
	root := testRoot(t)
	tree, err := NewTreeBuilder(root).Build([]TreeInput{{Path: root.Join("README").String(), Hash: readmeBlob}})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got, want := treeHash(t, tree), objects.ObjectHash("d563e95f9546ba7708a37dc1d61f82a1b4bbcf14"); got != want {
		t.Errorf("tree hash = %s, want %s", got, want)
	}
}

func TestTreeBuilder_ByteOrder(t *testing.T) {
	tree, err := NewTreeBuilder(testRoot(t)).Build([]TreeInput{
		{Path: "b", Hash: blobA},
		{Path: "B", Hash: blobA},
		{Path: "a-b", Hash: blobA},
		{Path: "a", Hash: blobA},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	var got []string
	for _, e := range tree.Entries() {
		got = append(got, e.Path)
	}
	want := []string{"B", "a", "a-b", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestTreeBuilder_KeepsExecutableMode(t *testing.T) {
	tree, err := NewTreeBuilder(testRoot(t)).Build([]TreeInput{
		{Path: "run.sh", Hash: blobA, Mode: objects.FileModeExecutable},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if e, _ := tree.Find("run.sh"); e.Mode != objects.FileModeExecutable {
		t.Errorf("mode = %o, want 100755", uint32(e.Mode))
	}
}

func TestTreeBuilder_DuplicatePath(t *testing.T) {
	root := testRoot(t)
	_, err := NewTreeBuilder(root).Build([]TreeInput{
		{Path: "a.txt", Hash: blobA},
		{Path: filepath.Join(root.String(), "a.txt"), Hash: blobB},
	})

	var dup *DuplicatePathError
	if !errors.As(err, &dup) {
		t.Fatalf("Build() error = %v, want DuplicatePathError", err)
	}
	if dup.Path != "a.txt" {
		t.Errorf("duplicate path = %q, want a.txt", dup.Path)
	}
	if !IsDuplicatePath(err) {
		t.Error("IsDuplicatePath() = false")
	}
}

func TestTreeBuilder_RejectsBadInput(t *testing.T) {
	root := testRoot(t)
	tests := []struct {
		name  string
		input TreeInput
	}{
		{"nul in path", TreeInput{Path: "a\x00b", Hash: blobA}},
		{"outside root", TreeInput{Path: "../escape", Hash: blobA}},
		{"root itself", TreeInput{Path: root.String(), Hash: blobA}},
		{"bad hash", TreeInput{Path: "a", Hash: "nothex"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTreeBuilder(root).Build([]TreeInput{tt.input})
			if !objects.IsEncoding(err) {
				t.Errorf("Build() error = %v, want encoding error", err)
			}
		})
	}
}

func TestTreeBuilder_RejectsAbsolutePathOutsideRoot(t *testing.T) {
	if filepath.Separator != '/' {
		t.Skip("unix absolute paths only")
	}
	_, err := NewTreeBuilder(testRoot(t)).Build([]TreeInput{{Path: "/a", Hash: blobA}})
	if !objects.IsEncoding(err) {
		t.Fatalf("Build(/a) error = %v, want encoding error", err)
	}
}
