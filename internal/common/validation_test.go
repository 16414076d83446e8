package common

import (
	"os"
	"strings"
	"testing"
)

func TestValidateRelativePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"plain file", "main.py", false},
		{"nested file", "src/ml_project/__init__.py", false},
		{"leading dot slash", "./github/workflows/.gitkeep", false},
		{"invalid - inner parent reference", "a/../b.txt", true},
		{"invalid - trailing parent reference", "a/b/..", true},
		{"dotted name is not a parent reference", "a/..b.txt", false},
		{"invalid - empty", "", true},
		{"invalid - whitespace", "   ", true},
		{"invalid - absolute", "/etc/passwd", true},
		{"invalid - escapes root", "../outside.txt", true},
		{"invalid - escapes after clean", "a/../../b.txt", true},
		{"invalid - dot", ".", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRelativePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRelativePath() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		project string
		wantErr bool
	}{
		{"valid", "ml_project", false},
		{"valid with digits", "model2", false},
		{"valid leading underscore", "_internal", false},
		{"invalid - empty", "", true},
		{"invalid - leading digit", "2model", true},
		{"invalid - hyphen", "ml-project", true},
		{"invalid - slash", "ml/project", true},
		{"invalid - too long", "a" + strings.Repeat("b", 64), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectName(tt.project)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProjectName() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParsePerms(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    os.FileMode
		wantErr bool
	}{
		{"leading zero", "0755", 0o755, false},
		{"no leading zero", "644", 0o644, false},
		{"0o prefix", "0o700", 0o700, false},
		{"invalid - empty", "", 0, true},
		{"invalid - not octal", "0789", 0, true},
		{"invalid - out of range", "1777", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePerms(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParsePerms() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParsePerms() = %o, want %o", got, tt.want)
			}
		})
	}
}
