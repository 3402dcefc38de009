package objects

import (
	"fmt"
	"os"
	"strconv"
)

// FileMode is the mode recorded for a tree entry.
type FileMode uint32

const (
	FileModeRegular    FileMode = 0o100644
	FileModeExecutable FileMode = 0o100755
	FileModeSymlink    FileMode = 0o120000
	FileModeDirectory  FileMode = 0o040000
)

// TreeString is the mode as written in a tree entry. Git writes octal with no
// zero padding, so a directory is "40000".
func (m FileMode) TreeString() string {
	return strconv.FormatUint(uint64(m), 8)
}

func (m FileMode) String() string {
	switch m {
	case FileModeRegular:
		return "regular"
	case FileModeExecutable:
		return "executable"
	case FileModeSymlink:
		return "symlink"
	case FileModeDirectory:
		return "directory"
	default:
		return fmt.Sprintf("unknown(%o)", uint32(m))
	}
}

// IsKnown reports whether m is one of the modes grit writes or reads.
func (m FileMode) IsKnown() bool {
	switch m {
	case FileModeRegular, FileModeExecutable, FileModeSymlink, FileModeDirectory:
		return true
	}
	return false
}

// ParseFileMode parses the octal mode text of a tree entry.
func ParseFileMode(s string) (FileMode, error) {
	v, e := strconv.ParseUint(s, 8, 32)
	if e != nil {
		return 0, fmt.Errorf("invalid mode %q: %w", s, e)
	}
	m := FileMode(v)
	if !m.IsKnown() {
		return 0, fmt.Errorf("unsupported mode %q", s)
	}
	return m, nil
}

// FromOSFileMode maps a workspace file's mode to a tree mode. Any execute bit
// makes the file executable.
func FromOSFileMode(mode os.FileMode) FileMode {
	switch {
	case mode&os.ModeSymlink != 0:
		return FileModeSymlink
	case mode.IsDir():
		return FileModeDirectory
	case mode&0o111 != 0:
		return FileModeExecutable
	default:
		return FileModeRegular
	}
}
