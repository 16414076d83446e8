// Package manifest describes the ordered list of paths a scaffold run creates.
// The list is either compiled in (Default) or read from a manifest file whose
// format follows its extension: YAML, TOML or plain text with one path per line.
package manifest

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/zoro11031/project-scaffolder/internal/common"
)

// DefaultProjectName is the package name used by the compiled-in list
const DefaultProjectName = "ml_project"

// KeepFileName is the placeholder that keeps an otherwise empty directory
// tracked by version control
const KeepFileName = ".gitkeep"

// PathEntry is a path relative to the scaffold root. It names a file,
// possibly nested in directories, or a keep-file marking a directory.
type PathEntry string

// String returns the entry as written
func (p PathEntry) String() string {
	return string(p)
}

// IsKeepFile reports whether the entry only marks its parent directory
func (p PathEntry) IsKeepFile() bool {
	return filepath.Base(filepath.FromSlash(string(p))) == KeepFileName
}

// PathList is an ordered sequence of entries; order is processing order
type PathList []PathEntry

// Manifest is the on-disk form of a PathList
type Manifest struct {
	Project string   `yaml:"project,omitempty" toml:"project,omitempty"`
	Paths   PathList `yaml:"paths" toml:"paths"`
}

// Format identifies a manifest file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatText Format = "text"
)

// FormatFor picks the encoding from a file extension
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatText
	}
}

// Default returns the compiled-in project skeleton for projectName
func Default(projectName string) PathList {
	if projectName == "" {
		projectName = DefaultProjectName
	}
	src := "src/" + projectName

	return PathList{
		"./github/workflows/" + KeepFileName,
		PathEntry(src + "/__init__.py"),
		PathEntry(src + "/components/__init__.py"),
		PathEntry(src + "/utils/__init__.py"),
		PathEntry(src + "/utils/common.py"),
		PathEntry(src + "/config/__init__.py"),
		PathEntry(src + "/config/configuration.py"),
		PathEntry(src + "/pipeline/__init__.py"),
		PathEntry(src + "/entity/__init__.py"),
		PathEntry(src + "/entity/config_entity.py"),
		PathEntry(src + "/constants/__init__.py"),
		"config/config.yaml",
		"dvc.yaml",
		"params.yaml",
		"schema.yaml",
		"main.py",
		"app.py",
		"Dockerfile",
		"requirements.txt",
		"setup.py",
		"research/trials.ipynb",
		"templates/index.html",
	}
}

// Validate checks every entry is a relative path inside the scaffold root
func Validate(paths PathList) error {
	if len(paths) == 0 {
		return fmt.Errorf("path list is empty")
	}
	for i, p := range paths {
		if err := common.ValidateRelativePath(string(p)); err != nil {
			return fmt.Errorf("entry %d: %w", i+1, err)
		}
	}
	return nil
}

// Load reads and validates a manifest file
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	m, err := Decode(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if err := Validate(m.Paths); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	return m, nil
}

// Decode parses manifest content in the given format
func Decode(data []byte, format Format) (*Manifest, error) {
	m := &Manifest{}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, m); err != nil {
			return nil, err
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), m); err != nil {
			return nil, err
		}
	default:
		paths, err := parseLines(data)
		if err != nil {
			return nil, err
		}
		m.Paths = paths
	}

	return m, nil
}

// parseLines reads one entry per line, skipping blank lines and comments
func parseLines(data []byte) (PathList, error) {
	var paths PathList

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		paths = append(paths, PathEntry(line))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return paths, nil
}

// Encode renders a manifest in the given format
func Encode(m *Manifest, format Format) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(m); err != nil {
			return nil, err
		}
	default:
		fmt.Fprintln(&buf, "# Scaffold manifest: one relative path per line")
		if m.Project != "" {
			fmt.Fprintf(&buf, "# Project: %s\n", m.Project)
		}
		for _, p := range m.Paths {
			fmt.Fprintln(&buf, p)
		}
	}

	return buf.Bytes(), nil
}
