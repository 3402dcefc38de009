package commitmanager

import (
	"strings"
	"time"

	"github.com/utkarsh5026/grit/pkg/config"
	"github.com/utkarsh5026/grit/pkg/objects"
)

// IdentitySource supplies the author and committer of a new commit. It is
// resolved by the caller; the pipeline never reads the environment itself.
// *config.TypedConfig satisfies it.
type IdentitySource interface {
	Author() (config.Identity, error)
	Committer() (config.Identity, error)
}

// StaticIdentity is an IdentitySource with fixed values.
type StaticIdentity struct {
	AuthorIdentity    config.Identity
	CommitterIdentity config.Identity
}

// Author implements IdentitySource.
func (s StaticIdentity) Author() (config.Identity, error) {
	return s.AuthorIdentity, nil
}

// Committer implements IdentitySource.
func (s StaticIdentity) Committer() (config.Identity, error) {
	return s.CommitterIdentity, nil
}

// TreeInput is one file to record in a tree. Path may be absolute (inside the
// repository root) or relative to it. A zero Mode means FileModeRegular.
type TreeInput struct {
	Path string
	Hash objects.ObjectHash
	Mode objects.FileMode
}

// CommitOptions contains configuration for creating a commit
type CommitOptions struct {
	// Message is the commit message (required). A trailing newline is added
	// when missing.
	Message string

	// Identity supplies author and committer (required).
	Identity IdentitySource

	// When overrides the timestamp of identities that carry none. Nil
	// means time.Now().
	When *time.Time
}

// Validate validates CommitOptions
func (opts *CommitOptions) Validate() error {
	if strings.TrimSpace(opts.Message) == "" {
		return NewCommitError("validate options", ErrEmptyMessage, "")
	}
	if opts.Identity == nil {
		return NewCommitError("validate options", ErrNoIdentity, "")
	}
	return nil
}

// CommitResult describes a commit that was written and made the new head.
type CommitResult struct {
	Hash   objects.ObjectHash
	Commit *objects.Commit
	Tree   *objects.Tree
	// Files is the number of workspace files recorded in the tree.
	Files int
}

// HistoryEntry is one commit reached while walking from the head.
type HistoryEntry struct {
	Hash   objects.ObjectHash
	Commit *objects.Commit
}
