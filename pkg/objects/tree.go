package objects

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// TreeEntry is one (mode, path, id) record of a tree.
//
// Serialized form:
//
//	<mode> SP <path> NUL <20-byte raw id>
type TreeEntry struct {
	Mode FileMode
	Path string
	Hash ObjectHash
}

// Validate checks that the entry has a canonical encoding.
func (e TreeEntry) Validate() error {
	switch {
	case e.Path == "":
		return NewEncodingError("encode_tree", e.Path, "empty path")
	case strings.IndexByte(e.Path, NullByte) >= 0:
		return NewEncodingError("encode_tree", e.Path, "path contains NUL byte")
	case strings.HasPrefix(e.Path, "/"):
		return NewEncodingError("encode_tree", e.Path, "path has a leading separator")
	case !e.Mode.IsKnown():
		return NewEncodingError("encode_tree", e.Path, fmt.Sprintf("unsupported mode %o", uint32(e.Mode)))
	}
	if err := e.Hash.Validate(); err != nil {
		return NewEncodingError("encode_tree", e.Path, "invalid child id: "+err.Error())
	}
	return nil
}

func (e TreeEntry) appendTo(buf *bytes.Buffer) error {
	raw, err := e.Hash.Raw()
	if err != nil {
		return NewEncodingError("encode_tree", e.Path, "invalid child id: "+err.Error())
	}
	buf.WriteString(e.Mode.TreeString())
	buf.WriteByte(SpaceByte)
	buf.WriteString(e.Path)
	buf.WriteByte(NullByte)
	buf.Write(raw[:])
	return nil
}

// Tree is a directory snapshot. Entries are kept sorted by path in byte order,
// which is part of the encoding: the same set of entries always yields the
// same identity.
type Tree struct {
	entries []TreeEntry
}

// NewTree sorts a copy of entries by path and returns the tree. Entries are
// validated when the tree is encoded.
func NewTree(entries []TreeEntry) *Tree {
	sorted := make([]TreeEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})
	return &Tree{entries: sorted}
}

func (t *Tree) Type() ObjectType {
	return TreeType
}

// Entries returns a copy of the sorted entries.
func (t *Tree) Entries() []TreeEntry {
	out := make([]TreeEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries.
func (t *Tree) Len() int {
	return len(t.entries)
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree) IsEmpty() bool {
	return len(t.entries) == 0
}

// Find returns the entry with the given path.
func (t *Tree) Find(path string) (TreeEntry, bool) {
	i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].Path >= path })
	if i < len(t.entries) && t.entries[i].Path == path {
		return t.entries[i], true
	}
	return TreeEntry{}, false
}

func (t *Tree) String() string {
	return fmt.Sprintf("Tree{entries: %d}", len(t.entries))
}

func (t *Tree) encodeEntries() ([]byte, error) {
	var buf bytes.Buffer
	for _, e := range t.entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if err := e.appendTo(&buf); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func decodeTree(payload []byte) (*Tree, error) {
	var entries []TreeEntry
	for off := 0; off < len(payload); {
		sp := bytes.IndexByte(payload[off:], SpaceByte)
		if sp == -1 {
			return nil, NewFormatError("decode_tree", fmt.Sprintf("entry at offset %d: missing space", off), nil)
		}
		mode, err := ParseFileMode(string(payload[off : off+sp]))
		if err != nil {
			return nil, NewFormatError("decode_tree", fmt.Sprintf("entry at offset %d", off), err)
		}

		nameStart := off + sp + 1
		nul := bytes.IndexByte(payload[nameStart:], NullByte)
		if nul == -1 {
			return nil, NewFormatError("decode_tree", fmt.Sprintf("entry at offset %d: missing NUL", off), nil)
		}
		path := string(payload[nameStart : nameStart+nul])

		idStart := nameStart + nul + 1
		idEnd := idStart + RawHashLength
		if idEnd > len(payload) {
			return nil, NewFormatError("decode_tree", fmt.Sprintf("entry %q: truncated id", path), nil)
		}
		var raw RawHash
		copy(raw[:], payload[idStart:idEnd])

		entries = append(entries, TreeEntry{Mode: mode, Path: path, Hash: raw.Hash()})
		off = idEnd
	}
	return &Tree{entries: entries}, nil
}
