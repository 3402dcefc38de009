package workdir

import (
	"os"
	"path/filepath"

	"github.com/utkarsh5026/grit/pkg/common/logger"
	"github.com/utkarsh5026/grit/pkg/objects"
	"github.com/utkarsh5026/grit/pkg/repository/ignore"
	"github.com/utkarsh5026/grit/pkg/repository/scpath"
)

// Enumerate lists the files directly inside root, sorted by name. Names the
// filter ignores are skipped, as are subdirectories and special files. Only
// the top level is scanned.
func Enumerate(root scpath.RepositoryPath, filter *ignore.Filter) ([]File, error) {
	log := logger.Component("workdir")

	dirEntries, readErr := os.ReadDir(root.String())
	if readErr != nil {
		return nil, NewWorkdirError("enumerate", root.String(), readErr)
	}

	files := make([]File, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if filter.Ignores(name) {
			log.Debug("ignoring entry", "name", name)
			continue
		}

		info, statErr := de.Info()
		if statErr != nil {
			if os.IsNotExist(statErr) {
				continue
			}
			return nil, NewWorkdirError("stat", filepath.Join(root.String(), name), statErr)
		}

		mode := info.Mode()
		switch {
		case mode.IsDir():
			log.Debug("skipping directory", "name", name)
			continue
		case !mode.IsRegular() && mode&os.ModeSymlink == 0:
			log.Debug("skipping special file", "name", name, "mode", mode.String())
			continue
		}

		files = append(files, File{
			Path: root.Join(name),
			Name: name,
			Mode: objects.FromOSFileMode(mode),
			Size: info.Size(),
		})
	}
	return files, nil
}

// ReadContent returns the bytes to store for f: the file contents, or the
// link target for a symlink.
func ReadContent(f File) ([]byte, error) {
	if f.IsSymlink() {
		target, linkErr := os.Readlink(f.Path.String())
		if linkErr != nil {
			return nil, NewWorkdirError("readlink", f.Path.String(), linkErr)
		}
		return []byte(filepath.ToSlash(target)), nil
	}

	data, readErr := os.ReadFile(f.Path.String())
	if readErr != nil {
		return nil, NewWorkdirError("read", f.Path.String(), readErr)
	}
	return data, nil
}
