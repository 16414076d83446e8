package system

import (
	"fmt"
	"os"
)

// FileSystem handles file system operations against the local disk
type FileSystem struct{}

// NewFileSystem creates a new FileSystem instance
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// EnsureDirectory creates a directory and any missing parents.
// If the directory already exists, it does nothing. A non-directory in the
// way yields the *fs.PathError from MkdirAll (ENOTDIR).
func (fs *FileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	return os.MkdirAll(path, perms)
}

// FileSize reports the size of path and whether it exists.
// A missing path is not an error.
func (fs *FileSystem) FileSize(path string) (int64, bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.Size(), true, nil
	}
	if os.IsNotExist(err) {
		return 0, false, nil
	}
	return 0, false, err
}

// TouchEmpty opens path for writing with truncation and closes it straight
// away, leaving an empty file behind.
func (fs *FileSystem) TouchEmpty(path string, perms os.FileMode) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perms)
	if err != nil {
		return err
	}
	return file.Close()
}

// FileExists checks if a file exists
func (fs *FileSystem) FileExists(path string) (bool, error) {
	_, exists, err := fs.FileSize(path)
	if err != nil {
		return false, fmt.Errorf("failed to check if file exists %s: %w", path, err)
	}
	return exists, nil
}
