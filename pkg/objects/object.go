package objects

// Object is one of *Blob, *Tree or *Commit. The set is closed: the unexported
// method keeps other packages from adding variants, and Encode and Decode
// switch over exactly these three.
type Object interface {
	Type() ObjectType
	sealed()
}

func (*Blob) sealed()   {}
func (*Tree) sealed()   {}
func (*Commit) sealed() {}

// Encode returns the canonical serialized form of obj.
func Encode(obj Object) (SerializedObject, error) {
	var (
		payload []byte
		e       error
	)
	switch o := obj.(type) {
	case *Blob:
		if o == nil {
			return nil, NewEncodingError("encode", "", "nil blob")
		}
		payload = o.data
	case *Tree:
		if o == nil {
			return nil, NewEncodingError("encode", "", "nil tree")
		}
		payload, e = o.encodeEntries()
	case *Commit:
		if o == nil {
			return nil, NewEncodingError("encode", "", "nil commit")
		}
		payload, e = o.encodePayload()
	default:
		return nil, NewEncodingError("encode", "", "nil object")
	}
	if e != nil {
		return nil, e
	}
	return Frame(obj.Type(), payload)
}

// Hash encodes obj and returns its identity together with the serialized bytes.
func Hash(obj Object) (ObjectHash, SerializedObject, error) {
	so, e := Encode(obj)
	if e != nil {
		return "", nil, e
	}
	return Identify(so), so, nil
}

// Decode parses a serialized object back into its typed form.
func Decode(so SerializedObject) (Object, error) {
	objType, payload, e := so.Payload()
	if e != nil {
		return nil, e
	}
	switch objType {
	case BlobType:
		return NewBlob(payload), nil
	case TreeType:
		return decodeTree(payload)
	case CommitType:
		return decodeCommit(payload)
	}
	return nil, NewFormatError("decode", "unsupported object type "+objType.String(), nil)
}
