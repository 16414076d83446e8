package system

import (
	"os"
	"path/filepath"
	"sync"
)

// MockFileSystem is an in-memory FileSystemManager for testing purposes.
// Failures can be injected per path through Errors.
type MockFileSystem struct {
	mu     sync.Mutex
	Dirs   map[string]bool
	Files  map[string]int64
	Errors map[string]error
	// Calls records every operation as "op path" in call order
	Calls []string
}

// NewMockFileSystem creates a new MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Dirs:   make(map[string]bool),
		Files:  make(map[string]int64),
		Errors: make(map[string]error),
	}
}

// EnsureDirectory records the directory and its parents.
func (m *MockFileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "mkdir "+path)
	if err, ok := m.Errors[path]; ok {
		return err
	}
	for dir := filepath.Clean(path); dir != "." && dir != string(filepath.Separator); dir = filepath.Dir(dir) {
		m.Dirs[dir] = true
	}
	return nil
}

// FileSize reports the recorded size of a file.
func (m *MockFileSystem) FileSize(path string) (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "stat "+path)
	size, ok := m.Files[path]
	return size, ok, nil
}

// TouchEmpty records an empty file unless a failure was injected for path.
func (m *MockFileSystem) TouchEmpty(path string, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "touch "+path)
	if err, ok := m.Errors[path]; ok {
		return err
	}
	m.Files[path] = 0
	return nil
}

// FileExists reports whether a file was recorded at path.
func (m *MockFileSystem) FileExists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "exists "+path)
	if err, ok := m.Errors[path]; ok {
		return false, err
	}
	_, ok := m.Files[path]
	return ok, nil
}
