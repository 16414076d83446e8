package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ValidateRelativePath validates a scaffold entry: it must be a non-empty
// relative path that names something below the target root, with no ".."
// segment anywhere.
func ValidateRelativePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if filepath.IsAbs(path) || strings.HasPrefix(path, "/") {
		return fmt.Errorf("path must be relative: %s", path)
	}

	clean := filepath.ToSlash(filepath.Clean(filepath.FromSlash(path)))
	if clean == "." {
		return fmt.Errorf("path does not name a file: %s", path)
	}
	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if segment == ".." {
			return fmt.Errorf("path must not contain parent references: %s", path)
		}
	}

	return nil
}

// ValidateProjectName validates a project name used as a package directory
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}

	if len(name) > 64 {
		return fmt.Errorf("project name too long (max 64 characters): %s", name)
	}

	firstChar := name[0]
	if !((firstChar >= 'a' && firstChar <= 'z') || (firstChar >= 'A' && firstChar <= 'Z') || firstChar == '_') {
		return fmt.Errorf("project name must start with a letter or underscore: %s", name)
	}

	for _, c := range name {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_') {
			return fmt.Errorf("project name contains invalid character: %s", name)
		}
	}

	return nil
}

// ParsePerms parses an octal permission string such as "0755" or "644"
func ParsePerms(value string) (os.FileMode, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, fmt.Errorf("permissions cannot be empty")
	}

	s = strings.TrimPrefix(s, "0o")
	p, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid octal permissions: %s", value)
	}

	if p > 0o777 {
		return 0, fmt.Errorf("permissions out of range: %s", value)
	}

	return os.FileMode(p), nil
}

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}
