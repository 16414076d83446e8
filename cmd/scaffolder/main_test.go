package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zoro11031/project-scaffolder/internal/cli"
	"github.com/zoro11031/project-scaffolder/internal/manifest"
	"github.com/zoro11031/project-scaffolder/pkg/version"
)

// resetFlags clears flag-bound globals between command invocations
func resetFlags() {
	runOpts = cli.RunOptions{}
	initForce = false
	initSaveConfig = false
	nonInteractive = false
	configPath = ""
	if f := rootCmd.Flags().Lookup("version"); f != nil {
		_ = f.Value.Set("false")
	}
}

func TestExecuteReportsErrors(t *testing.T) {
	resetFlags()
	tmpDir := t.TempDir()
	bad := filepath.Join(tmpDir, "paths.txt")
	if err := os.WriteFile(bad, []byte("ok.txt\n/etc/absolute.txt\n"), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	var stderr bytes.Buffer
	code := execute([]string{
		"--config", filepath.Join(tmpDir, "test.conf"),
		"--non-interactive",
		"--manifest", bad,
		"--dir", tmpDir,
	}, &stderr)

	if code != 1 {
		t.Errorf("execute() = %d, want 1", code)
	}
	if !strings.HasPrefix(stderr.String(), "Error: ") {
		t.Errorf("stderr = %q, want an \"Error: \" line", stderr.String())
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "ok.txt")); !os.IsNotExist(err) {
		t.Error("an invalid manifest should not scaffold anything")
	}
}

func TestExecuteRunScaffolds(t *testing.T) {
	resetFlags()
	tmpDir := t.TempDir()

	var stderr bytes.Buffer
	code := execute([]string{
		"run",
		"--config", filepath.Join(tmpDir, "test.conf"),
		"--non-interactive",
		"--project", "churn",
		"--dir", tmpDir,
	}, &stderr)
	if code != 0 {
		t.Fatalf("execute(run) = %d, stderr = %q", code, stderr.String())
	}

	for _, p := range manifest.Default("churn") {
		if _, err := os.Stat(filepath.Join(tmpDir, filepath.FromSlash(string(p)))); err != nil {
			t.Errorf("expected %s to exist: %v", p, err)
		}
	}
}

func TestExecuteInitOverwrite(t *testing.T) {
	resetFlags()
	tmpDir := t.TempDir()
	conf := filepath.Join(tmpDir, "test.conf")
	path := filepath.Join(tmpDir, "scaffold.yaml")

	if err := os.WriteFile(path, []byte("paths:\n  - old.txt\n"), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	var stderr bytes.Buffer
	if code := execute([]string{"init", path, "--config", conf, "--non-interactive"}, &stderr); code != 1 {
		t.Errorf("execute(init) without --force = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "already exists") {
		t.Errorf("stderr = %q, want overwrite refusal", stderr.String())
	}

	stderr.Reset()
	code := execute([]string{"init", path, "--config", conf, "--non-interactive", "--force", "--project", "churn"}, &stderr)
	if code != 0 {
		t.Fatalf("execute(init --force) = %d, stderr = %q", code, stderr.String())
	}

	m, err := manifest.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Project != "churn" || len(m.Paths) != len(manifest.Default("churn")) {
		t.Errorf("manifest = project %q with %d paths, want the churn layout", m.Project, len(m.Paths))
	}
}

func TestExecuteVersionFlag(t *testing.T) {
	resetFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	defer rootCmd.SetOut(nil)

	if code := execute([]string{"--version"}, &bytes.Buffer{}); code != 0 {
		t.Fatalf("execute(--version) = %d, want 0", code)
	}
	if !strings.Contains(out.String(), version.Short()) {
		t.Errorf("--version output = %q, want %s", out.String(), version.Short())
	}
}
