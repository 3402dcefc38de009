package objects

import (
	"bytes"
	"fmt"
	"strconv"
)

// ObjectType is the kind name written in an object header.
type ObjectType string

const (
	BlobType   ObjectType = "blob"
	TreeType   ObjectType = "tree"
	CommitType ObjectType = "commit"
)

const (
	NullByte  = byte(0)
	SpaceByte = byte(' ')
)

func (o ObjectType) String() string {
	return string(o)
}

// ParseObjectType converts a header kind name to an ObjectType.
func ParseObjectType(s string) (ObjectType, error) {
	switch ObjectType(s) {
	case BlobType, TreeType, CommitType:
		return ObjectType(s), nil
	default:
		return "", fmt.Errorf("unknown object type: %q", s)
	}
}

// SerializedObject is the framed canonical form of an object:
//
//	<type> SP <decimal length> NUL <payload>
//
// Its SHA-1 is the object's identity.
type SerializedObject []byte

// Frame builds the serialized form of a payload.
func Frame(objType ObjectType, payload []byte) (SerializedObject, error) {
	n := len(payload)
	if n < 0 {
		return nil, NewEncodingError("frame", "", fmt.Sprintf("negative length %d", n))
	}
	size := strconv.Itoa(n)

	out := make([]byte, 0, len(objType)+1+len(size)+1+n)
	out = append(out, objType...)
	out = append(out, SpaceByte)
	out = append(out, size...)
	out = append(out, NullByte)
	out = append(out, payload...)
	return SerializedObject(out), nil
}

func (so SerializedObject) Bytes() []byte {
	return []byte(so)
}

// ParseHeader returns the kind, the declared payload length and the offset of
// the payload.
func (so SerializedObject) ParseHeader() (ObjectType, int, int, error) {
	data := []byte(so)
	nul := bytes.IndexByte(data, NullByte)
	if nul == -1 {
		return "", 0, 0, NewFormatError("parse_header", "missing NUL after header", nil)
	}
	sp := bytes.IndexByte(data[:nul], SpaceByte)
	if sp == -1 {
		return "", 0, 0, NewFormatError("parse_header", "missing space in header", nil)
	}

	objType, e := ParseObjectType(string(data[:sp]))
	if e != nil {
		return "", 0, 0, NewFormatError("parse_header", "", e)
	}

	sizeText := string(data[sp+1 : nul])
	size, e := strconv.Atoi(sizeText)
	if e != nil || size < 0 || strconv.Itoa(size) != sizeText {
		return "", 0, 0, NewFormatError("parse_header", fmt.Sprintf("invalid length %q", sizeText), nil)
	}
	return objType, size, nul + 1, nil
}

// Payload returns the bytes after the header, checking the declared length.
func (so SerializedObject) Payload() (ObjectType, []byte, error) {
	objType, size, start, e := so.ParseHeader()
	if e != nil {
		return "", nil, e
	}
	payload := []byte(so)[start:]
	if len(payload) != size {
		return "", nil, NewFormatError("parse_payload",
			fmt.Sprintf("%s length mismatch: header says %d, got %d", objType, size, len(payload)), nil)
	}
	return objType, payload, nil
}

// Type returns the kind from the header.
func (so SerializedObject) Type() (ObjectType, error) {
	objType, _, _, e := so.ParseHeader()
	return objType, e
}
