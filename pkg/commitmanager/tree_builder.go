package commitmanager

import (
	"github.com/utkarsh5026/grit/pkg/objects"
	"github.com/utkarsh5026/grit/pkg/repository/scpath"
)

// TreeBuilder turns workspace files into a single tree object.
//
// Each input path is canonicalized against the repository root, so
//
//	/work/repo/README      -> README
//	README                 -> README
//	docs\guide.md          -> docs/guide.md   (on windows)
//
// and the entries are sorted by canonical path in byte order. The resulting
// tree is flat: a path with separators is stored as one entry name.
type TreeBuilder struct {
	root scpath.RepositoryPath
}

// NewTreeBuilder creates a TreeBuilder for the repository rooted at root.
func NewTreeBuilder(root scpath.RepositoryPath) *TreeBuilder {
	return &TreeBuilder{root: root}
}

// Build canonicalizes, checks and sorts inputs and returns the tree. It does
// not write anything. No inputs yield the empty tree. Two inputs with the
// same canonical path fail with a DuplicatePathError.
func (tb *TreeBuilder) Build(inputs []TreeInput) (*objects.Tree, error) {
	entries := make([]objects.TreeEntry, 0, len(inputs))
	seen := make(map[string]struct{}, len(inputs))

	for _, in := range inputs {
		rel, cerr := tb.root.Canonicalize(in.Path)
		if cerr != nil {
			return nil, objects.NewEncodingError("build_tree", in.Path, cerr.Error())
		}
		path := rel.String()

		if _, dup := seen[path]; dup {
			return nil, NewDuplicatePathError(path)
		}
		seen[path] = struct{}{}

		mode := in.Mode
		if mode == 0 {
			mode = objects.FileModeRegular
		}
		entry := objects.TreeEntry{Mode: mode, Path: path, Hash: in.Hash}
		if verr := entry.Validate(); verr != nil {
			return nil, verr
		}
		entries = append(entries, entry)
	}

	return objects.NewTree(entries), nil
}
