package refs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/utkarsh5026/grit/pkg/common/fileops"
	"github.com/utkarsh5026/grit/pkg/common/err"
	"github.com/utkarsh5026/grit/pkg/objects"
	"github.com/utkarsh5026/grit/pkg/repository/scpath"
)

const (
	// SymbolicRefPrefix starts a HEAD that points at another ref, as written
	// by git init ("ref: refs/heads/main").
	SymbolicRefPrefix = "ref: "

	// MaxRefDepth bounds how many symbolic refs are followed.
	MaxRefDepth = 5

	refFileMode os.FileMode = 0o644
)

// HeadRef is the pointer to the latest commit, stored in .git/HEAD as the
// commit's hex id followed by a newline. HEAD written by git as a symbolic
// ref is followed, and updates go to the ref it names.
type HeadRef struct {
	sourceDir scpath.SourcePath
}

// NewHeadRef returns the head ref of the repository whose .git directory is
// sourceDir.
func NewHeadRef(sourceDir scpath.SourcePath) *HeadRef {
	return &HeadRef{sourceDir: sourceDir}
}

// Path returns the HEAD file.
func (h *HeadRef) Path() scpath.SourcePath {
	return h.sourceDir.HeadPath()
}

// Read returns the current commit id. ok is false when the repository has no
// history: HEAD (or the ref it points to) is missing or empty. Content that is
// not an object id is reported as corruption, never as "no history".
func (h *HeadRef) Read() (hash objects.ObjectHash, ok bool, e error) {
	path, content, e := h.resolve()
	if e != nil || content == "" {
		return "", false, e
	}

	hash, perr := objects.ParseObjectHash(content)
	if perr != nil {
		return "", false, newRefError(err.CodeRefCorruption, "read_head", path.String(), content,
			"ref does not hold an object id", perr)
	}
	return hash, true, nil
}

// Update points the head at hash. The new content is written to a temporary
// file and renamed into place.
func (h *HeadRef) Update(hash objects.ObjectHash) error {
	if verr := hash.Validate(); verr != nil {
		return newRefError(err.CodeInvalidInput, "update_head", h.Path().String(), hash.String(),
			"invalid object id", verr)
	}

	path, _, e := h.resolve()
	if e != nil && !IsCorruption(e) {
		return e
	}

	target := path.ToAbsolutePath()
	if ferr := fileops.EnsureParentDir(target); ferr != nil {
		return newRefError(err.CodeIO, "update_head", path.String(), "", "", ferr)
	}
	content := strings.ToLower(hash.String()) + "\n"
	if ferr := fileops.AtomicWrite(target, []byte(content), refFileMode); ferr != nil {
		return newRefError(err.CodeIO, "update_head", path.String(), "", "", ferr)
	}
	return nil
}

// resolve follows symbolic refs from HEAD and returns the file that holds
// the id together with its trimmed content ("" when the file is missing).
func (h *HeadRef) resolve() (scpath.SourcePath, string, error) {
	path := h.Path()
	for range MaxRefDepth {
		content, rerr := fileops.ReadString(path.ToAbsolutePath())
		if rerr != nil {
			return path, "", newRefError(err.CodeIO, "read_head", path.String(), "", "", rerr)
		}

		target, symbolic := strings.CutPrefix(content, SymbolicRefPrefix)
		if !symbolic {
			return path, content, nil
		}

		target = strings.TrimSpace(target)
		if !validRefName(target) {
			return path, content, newRefError(err.CodeRefCorruption, "read_head", path.String(), content,
				"symbolic ref points outside refs/", nil)
		}
		path = h.sourceDir.Join(filepath.FromSlash(target))
	}
	return path, "", newRefError(err.CodeRefCorruption, "read_head", h.Path().String(), "",
		"symbolic ref chain too deep", nil)
}

func validRefName(name string) bool {
	if !strings.HasPrefix(name, "refs/") {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == "" || part == "." || part == ".." {
			return false
		}
	}
	return true
}
