package store

import (
	"github.com/utkarsh5026/grit/pkg/objects"
	"github.com/utkarsh5026/grit/pkg/repository/scpath"
)

// ObjectStore persists objects under their content-derived ids.
type ObjectStore interface {
	// Initialize binds the store to a repository and creates .git/objects.
	Initialize(repoPath scpath.RepositoryPath) error

	// Write stores already-serialized bytes under hash. Writing the same
	// object twice is harmless.
	Write(hash objects.ObjectHash, serialized objects.SerializedObject) error

	// WriteObject encodes obj, stores it and returns its id.
	WriteObject(obj objects.Object) (objects.ObjectHash, error)

	// ReadObject loads and decodes the object with the given id.
	ReadObject(hash objects.ObjectHash) (objects.Object, error)

	// ReadRaw loads the serialized bytes of an object.
	ReadRaw(hash objects.ObjectHash) (objects.SerializedObject, error)

	// HasObject reports whether an object file exists for hash.
	HasObject(hash objects.ObjectHash) (bool, error)
}
