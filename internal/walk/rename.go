package walk

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/eykd/notox-go/internal/sanitize"
)

// FS is the filesystem surface the walker touches: enumerate a directory's
// entries, ask whether a path is a directory, and atomically rename one
// path within its parent. No file contents are ever read or written.
type FS interface {
	ReadDir(name string) ([]fs.DirEntry, error)
	IsDir(name string) bool
	Rename(oldpath, newpath string) error
}

// OSFS implements FS with os calls.
type OSFS struct{}

// ReadDir lists the entries of the named directory.
func (OSFS) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }

// IsDir reports whether name exists and is a directory, following symlinks.
func (OSFS) IsDir(name string) bool {
	info, err := os.Stat(name)
	return err == nil && info.IsDir()
}

// Rename renames oldpath to newpath.
func (OSFS) Rename(oldpath, newpath string) error { return os.Rename(oldpath, newpath) }

// apply sanitizes the final component of path and applies the verdict:
// Unchanged when the name is already clean, an ErrorRename preview under
// dry-run, and otherwise the real rename. A given path is applied at most
// once per invocation, so no path is ever renamed twice.
func (w *Walker) apply(path string) Outcome {
	base := filepath.Base(path)
	if base == "/" || base == "." || base == ".." {
		// no final component to rewrite
		return Unchanged(path)
	}
	cleaned := sanitize.Clean(base)
	if cleaned == base {
		return Unchanged(path)
	}
	modified := filepath.Join(filepath.Dir(path), cleaned)
	if w.dryRun {
		return RenameError(path, modified, DryRunReason)
	}
	if err := w.fs.Rename(path, modified); err != nil {
		return RenameError(path, modified, err.Error())
	}
	return Changed(path, modified)
}
