package objects

import (
	"errors"
	"strings"
	"time"
)

// CommitBuilder assembles a Commit. Setters record problems and Build reports
// them all at once.
//
//	c, err := objects.NewCommitBuilder().
//		Tree(treeHash).
//		Parent(head).
//		Author(author).
//		Committer(committer).
//		Message("Initial commit").
//		Build()
type CommitBuilder struct {
	commit Commit
	now    func() time.Time
	errs   []error
}

// NewCommitBuilder creates an empty builder. Signatures without a time are
// stamped with time.Now at Build.
func NewCommitBuilder() *CommitBuilder {
	return &CommitBuilder{now: time.Now}
}

// Clock overrides the function used to stamp signatures that carry no time.
func (b *CommitBuilder) Clock(now func() time.Time) *CommitBuilder {
	if now != nil {
		b.now = now
	}
	return b
}

// Tree sets the snapshot the commit records.
func (b *CommitBuilder) Tree(h ObjectHash) *CommitBuilder {
	if err := h.Validate(); err != nil {
		b.errs = append(b.errs, NewEncodingError("build_commit", "", "invalid tree id: "+err.Error()))
		return b
	}
	b.commit.TreeHash = ObjectHash(strings.ToLower(string(h)))
	return b
}

// Parent sets the previous commit. A zero hash means no parent.
func (b *CommitBuilder) Parent(h ObjectHash) *CommitBuilder {
	if h.IsZero() {
		b.commit.Parent = ""
		return b
	}
	if err := h.Validate(); err != nil {
		b.errs = append(b.errs, NewEncodingError("build_commit", "", "invalid parent id: "+err.Error()))
		return b
	}
	b.commit.Parent = ObjectHash(strings.ToLower(string(h)))
	return b
}

// Author sets the author signature.
func (b *CommitBuilder) Author(s Signature) *CommitBuilder {
	b.commit.Author = s
	return b
}

// Committer sets the committer signature.
func (b *CommitBuilder) Committer(s Signature) *CommitBuilder {
	b.commit.Committer = s
	return b
}

// Message sets the message. It is kept verbatim apart from a trailing newline
// added when missing.
func (b *CommitBuilder) Message(msg string) *CommitBuilder {
	b.commit.Message = terminateMessage(msg)
	return b
}

// Build validates and returns the commit.
func (b *CommitBuilder) Build() (*Commit, error) {
	if b.commit.TreeHash.IsZero() && len(b.errs) == 0 {
		b.errs = append(b.errs, NewEncodingError("build_commit", "", "tree id is required"))
	}
	if err := b.commit.Author.validate("author"); err != nil {
		b.errs = append(b.errs, err)
	}
	if err := b.commit.Committer.validate("committer"); err != nil {
		b.errs = append(b.errs, err)
	}
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	c := b.commit
	if c.Message == "" {
		c.Message = "\n"
	}
	now := b.now()
	if c.Author.When.IsZero() {
		c.Author.When = now
	}
	if c.Committer.When.IsZero() {
		c.Committer.When = now
	}
	return &c, nil
}
