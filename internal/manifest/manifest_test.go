package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	paths := Default("")

	if len(paths) != 22 {
		t.Fatalf("Default() returned %d entries, want 22", len(paths))
	}
	if paths[0] != "./github/workflows/.gitkeep" {
		t.Errorf("first entry = %q, want the workflows keep-file", paths[0])
	}
	if paths[1] != "src/ml_project/__init__.py" {
		t.Errorf("second entry = %q, want src/ml_project/__init__.py", paths[1])
	}
	if paths[len(paths)-1] != "templates/index.html" {
		t.Errorf("last entry = %q, want templates/index.html", paths[len(paths)-1])
	}

	if err := Validate(paths); err != nil {
		t.Errorf("Validate(Default()) error = %v", err)
	}
}

func TestDefaultCustomProject(t *testing.T) {
	paths := Default("churn")

	count := 0
	for _, p := range paths {
		if strings.Contains(string(p), "ml_project") {
			t.Errorf("entry %q still references the default project", p)
		}
		if strings.HasPrefix(string(p), "src/churn/") {
			count++
		}
	}
	if count != 10 {
		t.Errorf("found %d entries under src/churn, want 10", count)
	}
}

func TestIsKeepFile(t *testing.T) {
	tests := []struct {
		entry PathEntry
		want  bool
	}{
		{"./github/workflows/.gitkeep", true},
		{".gitkeep", true},
		{"src/app/__init__.py", false},
		{"notes.gitkeep", false},
	}

	for _, tt := range tests {
		if got := tt.entry.IsKeepFile(); got != tt.want {
			t.Errorf("IsKeepFile(%q) = %v, want %v", tt.entry, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		paths   PathList
		wantErr bool
	}{
		{"valid list", PathList{"a/b/c.txt", "d.txt"}, false},
		{"empty list", PathList{}, true},
		{"absolute entry", PathList{"a.txt", "/tmp/b.txt"}, true},
		{"escaping entry", PathList{"../b.txt"}, true},
		{"inner parent reference", PathList{"src/../b.txt"}, true},
		{"blank entry", PathList{"a.txt", ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.paths)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"scaffold.yaml": FormatYAML,
		"scaffold.YML":  FormatYAML,
		"scaffold.toml": FormatTOML,
		"scaffold.txt":  FormatText,
		"paths":         FormatText,
	}

	for path, want := range tests {
		if got := FormatFor(path); got != want {
			t.Errorf("FormatFor(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestLoadFormats(t *testing.T) {
	tmpDir := t.TempDir()
	want := PathList{"a/b/c.txt", "d.txt"}

	files := map[string]string{
		"paths.yaml": "project: demo\npaths:\n  - a/b/c.txt\n  - d.txt\n",
		"paths.toml": "project = \"demo\"\npaths = [\"a/b/c.txt\", \"d.txt\"]\n",
		"paths.txt":  "# comment\n\na/b/c.txt\n  d.txt  \n",
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(tmpDir, name)
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatalf("Failed to write manifest: %v", err)
			}

			m, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if len(m.Paths) != len(want) {
				t.Fatalf("Load() returned %d paths, want %d", len(m.Paths), len(want))
			}
			for i := range want {
				if m.Paths[i] != want[i] {
					t.Errorf("path %d = %q, want %q", i, m.Paths[i], want[i])
				}
			}
		})
	}
}

func TestLoadRejectsInvalidEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("ok.txt\n../escape.txt\n"), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil, want error for escaping entry")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() error = nil, want error for missing file")
	}
}

func TestSaveThenLoad(t *testing.T) {
	tmpDir := t.TempDir()
	m := &Manifest{Project: "demo", Paths: Default("demo")}

	for _, name := range []string{"scaffold.yaml", "scaffold.toml", "scaffold.txt"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(tmpDir, name)
			if err := Save(path, m); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			loaded, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(loaded.Paths) != len(m.Paths) {
				t.Fatalf("loaded %d paths, want %d", len(loaded.Paths), len(m.Paths))
			}
			for i := range m.Paths {
				if loaded.Paths[i] != m.Paths[i] {
					t.Errorf("path %d = %q, want %q", i, loaded.Paths[i], m.Paths[i])
				}
			}
		})
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".scaffold-manifest.tmp-") {
			t.Errorf("temp file %s left behind", e.Name())
		}
	}
}

func TestSaveRejectsInvalidManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scaffold.yaml")
	if err := Save(path, &Manifest{Paths: PathList{"/abs"}}); err == nil {
		t.Error("Save() error = nil, want error for absolute entry")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("manifest should not exist after rejected save, stat err = %v", err)
	}
}
