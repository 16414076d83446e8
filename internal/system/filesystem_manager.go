package system

import "os"

// FileSystemManager defines the interface for file system operations.
// This allows for mocking the file system in tests.
type FileSystemManager interface {
	EnsureDirectory(path string, perms os.FileMode) error
	FileSize(path string) (size int64, exists bool, err error)
	TouchEmpty(path string, perms os.FileMode) error
	FileExists(path string) (bool, error)
}
