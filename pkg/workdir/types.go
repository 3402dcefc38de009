package workdir

import (
	"github.com/utkarsh5026/grit/pkg/objects"
	"github.com/utkarsh5026/grit/pkg/repository/scpath"
)

// File is a regular file or symlink found at the top level of a working tree.
type File struct {
	// Path is the absolute location of the file.
	Path scpath.AbsolutePath
	// Name is the entry name relative to the working tree root.
	Name string
	// Mode is the tree mode the file will be recorded with.
	Mode objects.FileMode
	// Size is the file size in bytes, or the link length for symlinks.
	Size int64
}

// IsSymlink reports whether the file is a symbolic link.
func (f File) IsSymlink() bool {
	return f.Mode == objects.FileModeSymlink
}
