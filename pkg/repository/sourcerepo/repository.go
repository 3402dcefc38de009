package sourcerepo

import (
	"github.com/utkarsh5026/grit/pkg/objects"
	"github.com/utkarsh5026/grit/pkg/repository/refs"
	"github.com/utkarsh5026/grit/pkg/repository/scpath"
	"github.com/utkarsh5026/grit/pkg/store"
)

// Repository gives access to a repository's directories, objects and head.
type Repository interface {
	// WorkingDirectory returns the workspace root.
	WorkingDirectory() scpath.RepositoryPath

	// SourceDirectory returns the .git directory.
	SourceDirectory() scpath.SourcePath

	// ObjectStore returns the object store for this repository
	ObjectStore() store.ObjectStore

	// HeadRef returns the .git/HEAD pointer.
	HeadRef() *refs.HeadRef

	// ReadObject reads an object by id.
	ReadObject(hash objects.ObjectHash) (objects.Object, error)

	// WriteObject writes an object and returns its id.
	WriteObject(obj objects.Object) (objects.ObjectHash, error)
}
