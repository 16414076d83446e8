package manifest

import (
	"fmt"
	"os"
	"path/filepath"
)

// Save writes a manifest using an atomic temp-file-and-rename so a failed
// write never leaves a truncated manifest behind
func Save(path string, m *Manifest) error {
	if err := Validate(m.Paths); err != nil {
		return fmt.Errorf("refusing to save invalid manifest: %w", err)
	}

	content, err := Encode(m, FormatFor(path))
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create manifest directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".scaffold-manifest.tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath) // Cleanup on error

	if err := tmpFile.Chmod(0644); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to set permissions on temp file: %w", err)
	}

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to manifest: %w", err)
	}

	return nil
}
