package scaffold

import "fmt"

// FilesystemError reports an operating system failure while scaffolding.
// It unwraps to the underlying error so errors.Is(err, fs.ErrPermission)
// and friends keep working.
type FilesystemError struct {
	Op   string // "create directory", "stat" or "create file"
	Path string
	Err  error
}

// Error returns "failed to <op> <path>: <cause>"
func (e *FilesystemError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *FilesystemError) Unwrap() error {
	return e.Err
}
