package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystem abstracts the file operations the reconciler performs:
// reading manifests and descriptors, writing them back, and the
// create/rename pair used for atomic commits.
//
// Two implementations exist: OSFileSystem for production and
// MemoryFileSystem for tests.
type FileSystem interface {
	// ReadFile reads the file at the given path.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to the given path, creating the file if it
	// does not exist and truncating it otherwise.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// MkdirAll creates the directory and any missing parents.
	// It is a no-op when the directory already exists.
	MkdirAll(path string, perm fs.FileMode) error

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)

	// Rename atomically moves oldPath to newPath, replacing newPath if
	// it exists.
	Rename(oldPath, newPath string) error
}
