package scpath

import "path/filepath"

// SourcePath is a path inside the .git directory.
type SourcePath string

func (sp SourcePath) String() string {
	return string(sp)
}

// Join joins elements onto the source path.
func (sp SourcePath) Join(elem ...string) SourcePath {
	return SourcePath(filepath.Join(append([]string{string(sp)}, elem...)...))
}

// ToAbsolutePath converts to an AbsolutePath.
func (sp SourcePath) ToAbsolutePath() AbsolutePath {
	return AbsolutePath(sp)
}

// ObjectsPath returns .git/objects.
func (sp SourcePath) ObjectsPath() SourcePath {
	return sp.Join(ObjectsDir)
}

// RefsPath returns .git/refs.
func (sp SourcePath) RefsPath() SourcePath {
	return sp.Join(RefsDir)
}

// HeadPath returns .git/HEAD.
func (sp SourcePath) HeadPath() SourcePath {
	return sp.Join(HeadFile)
}

// ConfigPath returns .git/grit.json.
func (sp SourcePath) ConfigPath() SourcePath {
	return sp.Join(ConfigFile)
}
