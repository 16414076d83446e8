// Package scaffold creates a project skeleton from an ordered path list.
// Each entry gets its parent directories and an empty file; entries that
// already hold content are left alone. The run stops at the first
// filesystem failure and does not roll back earlier entries.
package scaffold

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/zoro11031/project-scaffolder/internal/manifest"
	"github.com/zoro11031/project-scaffolder/internal/system"
	"github.com/zoro11031/project-scaffolder/internal/ui"
)

const dryRunPrefix = "[dry-run] "

// Options controls where and how entries are created
type Options struct {
	// Root is the directory entries resolve against; empty means the
	// current working directory
	Root      string
	DirPerms  os.FileMode
	FilePerms os.FileMode
	// DryRun logs the planned actions without touching the disk
	DryRun bool
}

// Result lists what a run did, in processing order. Paths are shown as
// written in the list (cleaned, slash separated).
type Result struct {
	Directories []string
	Created     []string
	Skipped     []string
}

// Scaffolder creates directories and empty files for a path list
type Scaffolder struct {
	fs   system.FileSystemManager
	ui   *ui.UI
	opts Options
}

// New creates a Scaffolder. Zero permissions fall back to 0755 / 0644.
func New(fs system.FileSystemManager, ui *ui.UI, opts Options) *Scaffolder {
	if opts.DirPerms == 0 {
		opts.DirPerms = 0755
	}
	if opts.FilePerms == 0 {
		opts.FilePerms = 0644
	}
	return &Scaffolder{
		fs:   fs,
		ui:   ui,
		opts: opts,
	}
}

// Split returns the directory part and final component of an entry.
// A leading "./" and redundant separators are dropped.
func Split(p manifest.PathEntry) (dir, name string) {
	clean := filepath.Clean(filepath.FromSlash(string(p)))
	dir, name = filepath.Split(clean)
	dir = strings.TrimSuffix(dir, string(filepath.Separator))
	return filepath.ToSlash(dir), name
}

// Run processes paths in order and returns at the first failure
func (s *Scaffolder) Run(paths manifest.PathList) (Result, error) {
	var result Result

	for _, p := range paths {
		if err := s.ensureEntry(p, &result); err != nil {
			return result, err
		}
	}

	return result, nil
}

func (s *Scaffolder) ensureEntry(p manifest.PathEntry, result *Result) error {
	dir, name := Split(p)
	display := name
	if dir != "" {
		display = dir + "/" + name
	}

	if dir != "" {
		if !s.opts.DryRun {
			if err := s.fs.EnsureDirectory(filepath.Join(s.opts.Root, filepath.FromSlash(dir)), s.opts.DirPerms); err != nil {
				return &FilesystemError{Op: "create directory", Path: dir, Err: err}
			}
		}
		s.logf("Creating directory: %s for the file: %s", dir, name)
		result.Directories = append(result.Directories, dir)
	}

	target := Target(s.opts.Root, p)
	size, exists, err := s.fs.FileSize(target)
	if err != nil {
		return &FilesystemError{Op: "stat", Path: display, Err: err}
	}

	// An empty file counts as not yet written and is recreated
	if !exists || size == 0 {
		if !s.opts.DryRun {
			if err := s.fs.TouchEmpty(target, s.opts.FilePerms); err != nil {
				return &FilesystemError{Op: "create file", Path: display, Err: err}
			}
		}
		s.logf("Creating empty file: %s", display)
		result.Created = append(result.Created, display)
		return nil
	}

	s.logf("%s already exists", name)
	result.Skipped = append(result.Skipped, display)
	return nil
}

// Target returns the on-disk location of an entry below root
func Target(root string, p manifest.PathEntry) string {
	return filepath.Join(root, filepath.Clean(filepath.FromSlash(string(p))))
}

func (s *Scaffolder) logf(format string, args ...interface{}) {
	if s.opts.DryRun {
		format = dryRunPrefix + format
	}
	s.ui.Logf(format, args...)
}
