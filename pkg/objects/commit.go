package objects

import (
	"bytes"
	"fmt"
	"strings"
)

// Commit is a snapshot record: one tree, at most one parent, authorship and a
// message. History is linear, so there are no merge commits.
//
// Payload:
//
//	tree <hex>
//	parent <hex>          (omitted for the first commit)
//	author <signature>
//	committer <signature>
//
//	<message>
type Commit struct {
	TreeHash  ObjectHash
	Parent    ObjectHash // zero for a root commit
	Author    Signature
	Committer Signature
	Message   string // always ends with "\n"
}

func (c *Commit) Type() ObjectType {
	return CommitType
}

// IsRoot reports whether the commit has no parent.
func (c *Commit) IsRoot() bool {
	return c.Parent.IsZero()
}

// Subject returns the first line of the message.
func (c *Commit) Subject() string {
	subject, _, _ := strings.Cut(c.Message, "\n")
	return subject
}

func (c *Commit) String() string {
	return fmt.Sprintf("Commit{tree: %s, parent: %s, subject: %.50q}", c.TreeHash.Short(), c.Parent.Short(), c.Subject())
}

func (c *Commit) encodePayload() ([]byte, error) {
	if err := c.TreeHash.Validate(); err != nil {
		return nil, NewEncodingError("encode_commit", "", "invalid tree id: "+err.Error())
	}
	if !c.Parent.IsZero() {
		if err := c.Parent.Validate(); err != nil {
			return nil, NewEncodingError("encode_commit", "", "invalid parent id: "+err.Error())
		}
	}
	if err := c.Author.validate("author"); err != nil {
		return nil, err
	}
	if err := c.Committer.validate("committer"); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "tree %s\n", strings.ToLower(c.TreeHash.String()))
	if !c.Parent.IsZero() {
		fmt.Fprintf(&buf, "parent %s\n", strings.ToLower(c.Parent.String()))
	}
	fmt.Fprintf(&buf, "author %s\n", c.Author)
	fmt.Fprintf(&buf, "committer %s\n", c.Committer)
	buf.WriteByte('\n')
	buf.WriteString(terminateMessage(c.Message))
	return buf.Bytes(), nil
}

func terminateMessage(msg string) string {
	if strings.HasSuffix(msg, "\n") {
		return msg
	}
	return msg + "\n"
}

func decodeCommit(payload []byte) (*Commit, error) {
	header, message, found := bytes.Cut(payload, []byte("\n\n"))
	if !found {
		return nil, NewFormatError("decode_commit", "missing blank line before message", nil)
	}

	c := &Commit{Message: string(message)}
	var seenAuthor, seenCommitter bool
	for _, line := range strings.Split(string(header), "\n") {
		key, value, _ := strings.Cut(line, " ")
		var err error
		switch key {
		case "tree":
			if !c.TreeHash.IsZero() {
				return nil, NewFormatError("decode_commit", "multiple tree lines", nil)
			}
			c.TreeHash, err = ParseObjectHash(value)
		case "parent":
			if !c.Parent.IsZero() {
				return nil, NewFormatError("decode_commit", "merge commits are not supported", nil)
			}
			c.Parent, err = ParseObjectHash(value)
		case "author":
			c.Author, err = ParseSignature(value)
			seenAuthor = true
		case "committer":
			c.Committer, err = ParseSignature(value)
			seenCommitter = true
		default:
			// extra headers (encoding, gpgsig and its continuation lines) are
			// not produced by grit and are skipped on read
		}
		if err != nil {
			return nil, NewFormatError("decode_commit", key+" line", err)
		}
	}

	if c.TreeHash.IsZero() || !seenAuthor || !seenCommitter {
		return nil, NewFormatError("decode_commit", "missing tree, author or committer", nil)
	}
	return c, nil
}
