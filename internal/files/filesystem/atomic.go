package filesystem

import (
	"fmt"
	"io/fs"

	"github.com/google/uuid"
)

// WriteAtomic writes data to a uniquely named temporary file next to the
// target and renames it into place. On POSIX systems rename is atomic, so
// readers never observe a half-written manifest. The uuid suffix keeps
// concurrent runs from clobbering each other's temp files.
func WriteAtomic(fsys FileSystem, path string, data []byte, perm fs.FileMode) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString()[:8])

	if err := fsys.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("failed to write temp file for %s: %w", path, err)
	}
	if err := fsys.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to commit %s: %w", path, err)
	}
	return nil
}
