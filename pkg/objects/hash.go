package objects

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
)

// ObjectHash is an object identity as 40 lowercase hex characters.
// Example: "e69de29bb2d1d6434b8b29ae775ad8c2e48c5391"
type ObjectHash string

// ShortHash is an abbreviated hash, typically 7 characters.
type ShortHash string

// RawHash is the 20-byte binary form stored inside trees.
type RawHash [20]byte

const (
	HashLength      = 40
	ShortHashLength = 7
	RawHashLength   = 20
)

// EmptyTreeHash is the identity of a tree with no entries.
const EmptyTreeHash ObjectHash = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"

// Identify returns the SHA-1 identity of a serialized object.
func Identify(so SerializedObject) ObjectHash {
	sum := sha1.Sum(so)
	return ObjectHash(hex.EncodeToString(sum[:]))
}

// NewObjectHashFromRaw converts the binary form to hex.
func NewObjectHashFromRaw(raw RawHash) ObjectHash {
	return ObjectHash(hex.EncodeToString(raw[:]))
}

// ParseObjectHash validates s and returns it lowercased.
func ParseObjectHash(s string) (ObjectHash, error) {
	h := ObjectHash(strings.ToLower(strings.TrimSpace(s)))
	if e := h.Validate(); e != nil {
		return "", e
	}
	return h, nil
}

func (h ObjectHash) String() string {
	return string(h)
}

// IsZero reports whether h is the empty hash, meaning "no object".
func (h ObjectHash) IsZero() bool {
	return h == ""
}

// Validate checks that h is 40 hex characters.
func (h ObjectHash) Validate() error {
	if len(h) != HashLength {
		return fmt.Errorf("hash must be %d characters long, got %d", HashLength, len(h))
	}
	for _, c := range h {
		if !isHexChar(c) {
			return fmt.Errorf("hash must contain only hex characters, found '%c'", c)
		}
	}
	return nil
}

// Short returns the abbreviated hash.
func (h ObjectHash) Short() ShortHash {
	if len(h) >= ShortHashLength {
		return ShortHash(h[:ShortHashLength])
	}
	return ShortHash(h)
}

// Raw returns the 20-byte binary form.
func (h ObjectHash) Raw() (RawHash, error) {
	if e := h.Validate(); e != nil {
		return RawHash{}, e
	}
	var raw RawHash
	if _, e := hex.Decode(raw[:], []byte(h)); e != nil {
		return RawHash{}, e
	}
	return raw, nil
}

// StoragePath splits the hash into the fan-out directory (2 chars) and the
// file name (38 chars) used under .git/objects.
func (h ObjectHash) StoragePath() (dir, file string) {
	return string(h[:2]), string(h[2:])
}

// Equal compares case-insensitively.
func (h ObjectHash) Equal(other ObjectHash) bool {
	return strings.EqualFold(string(h), string(other))
}

// HasPrefix reports whether h starts with prefix, ignoring case.
func (h ObjectHash) HasPrefix(prefix string) bool {
	return strings.HasPrefix(string(h), strings.ToLower(prefix))
}

func (sh ShortHash) String() string {
	return string(sh)
}

// Hash converts to hex form.
func (rh RawHash) Hash() ObjectHash {
	return NewObjectHashFromRaw(rh)
}

func (rh RawHash) String() string {
	return hex.EncodeToString(rh[:])
}

func isHexChar(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
