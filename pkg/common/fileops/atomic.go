package fileops

import (
	"fmt"
	"os"

	"github.com/google/renameio"

	"github.com/utkarsh5026/grit/pkg/repository/scpath"
)

// AtomicWrite replaces targetPath with data. The bytes go to a uniquely named
// temporary file in the target's directory, are fsynced, and the file is
// renamed over the target, so readers see either the old file or the complete
// new one. An existing target is overwritten. The parent directory must exist.
func AtomicWrite(targetPath scpath.AbsolutePath, data []byte, mode os.FileMode) error {
	pending, err := renameio.TempFile(targetPath.Dir().String(), targetPath.String())
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	// no-op once the rename succeeded
	defer pending.Cleanup()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := pending.Chmod(mode); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
