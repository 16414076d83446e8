// Package cli provides the command-line interface layer for the scaffolder,
// including settings resolution, entry inspection and the interactive menu.
// It bridges user commands to the scaffold package.
package cli

import (
	"fmt"

	"github.com/zoro11031/project-scaffolder/internal/common"
	"github.com/zoro11031/project-scaffolder/internal/config"
	"github.com/zoro11031/project-scaffolder/internal/manifest"
	"github.com/zoro11031/project-scaffolder/internal/scaffold"
	"github.com/zoro11031/project-scaffolder/internal/system"
	"github.com/zoro11031/project-scaffolder/internal/ui"
)

// BuiltinSource names the compiled-in path list in plans and output
const BuiltinSource = "built-in"

// AppContext holds all dependencies needed by commands. It is created once
// at program entry and passed explicitly.
type AppContext struct {
	Config *config.Config
	UI     *ui.UI
	FS     system.FileSystemManager
}

// NewAppContextWithOptions creates a new AppContext with custom options
func NewAppContextWithOptions(configPath string, nonInteractive bool) (*AppContext, error) {
	cfg := config.New(configPath)
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	uiInstance := ui.New()
	uiInstance.SetNonInteractive(nonInteractive)

	return &AppContext{
		Config: cfg,
		UI:     uiInstance,
		FS:     system.NewFileSystem(),
	}, nil
}

// RunOptions carries command-line overrides; empty fields fall back to settings
type RunOptions struct {
	Project      string
	ManifestFile string
	TargetDir    string
	DryRun       bool
}

// Plan is a resolved scaffold run: which list, from where, and how to apply it
type Plan struct {
	Source   string
	Manifest *manifest.Manifest
	Options  scaffold.Options
}

// BuiltinManifest returns the compiled-in layout for project, falling back
// to the configured project name when project is empty
func (ctx *AppContext) BuiltinManifest(project string) (*manifest.Manifest, error) {
	if project == "" {
		project = ctx.Config.GetOrDefault(config.KeyProjectName, manifest.DefaultProjectName)
	}
	if err := common.ValidateProjectName(project); err != nil {
		return nil, fmt.Errorf("invalid project name: %w", err)
	}

	return &manifest.Manifest{
		Project: project,
		Paths:   manifest.Default(project),
	}, nil
}

// ResolvePlan merges flags, settings and defaults into a Plan
func (ctx *AppContext) ResolvePlan(opts RunOptions) (*Plan, error) {
	manifestFile := opts.ManifestFile
	if manifestFile == "" {
		manifestFile = ctx.Config.GetOrDefault(config.KeyManifestFile, "")
	}

	plan := &Plan{Source: BuiltinSource}
	if manifestFile != "" {
		m, err := manifest.Load(manifestFile)
		if err != nil {
			return nil, err
		}
		plan.Source = manifestFile
		plan.Manifest = m
	} else {
		m, err := ctx.BuiltinManifest(opts.Project)
		if err != nil {
			return nil, err
		}
		plan.Manifest = m
	}

	targetDir := opts.TargetDir
	if targetDir == "" {
		targetDir = ctx.Config.GetOrDefault(config.KeyTargetDir, ".")
	}

	dirPerms, err := common.ParsePerms(ctx.Config.GetOrDefault(config.KeyDirPerms, "0755"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.KeyDirPerms, err)
	}
	filePerms, err := common.ParsePerms(ctx.Config.GetOrDefault(config.KeyFilePerms, "0644"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.KeyFilePerms, err)
	}

	plan.Options = scaffold.Options{
		Root:      targetDir,
		DirPerms:  dirPerms,
		FilePerms: filePerms,
		DryRun:    opts.DryRun,
	}

	return plan, nil
}

// RunScaffold resolves a plan and applies it
func (ctx *AppContext) RunScaffold(opts RunOptions) (scaffold.Result, error) {
	plan, err := ctx.ResolvePlan(opts)
	if err != nil {
		return scaffold.Result{}, err
	}

	return scaffold.New(ctx.FS, ctx.UI, plan.Options).Run(plan.Manifest.Paths)
}

// EntryState describes what is on disk for an entry
type EntryState string

const (
	StateMissing EntryState = "missing"
	StateEmpty   EntryState = "empty"
	StatePresent EntryState = "present"
)

// EntryStatus is the on-disk state of one entry. Marker is set for keep-files
// that only hold their directory in place.
type EntryStatus struct {
	Entry  manifest.PathEntry
	State  EntryState
	Size   int64
	Marker bool
}

// Inspect reports the current state of every entry in the plan without
// changing anything
func (ctx *AppContext) Inspect(plan *Plan) ([]EntryStatus, error) {
	statuses := make([]EntryStatus, 0, len(plan.Manifest.Paths))

	for _, p := range plan.Manifest.Paths {
		size, exists, err := ctx.FS.FileSize(scaffold.Target(plan.Options.Root, p))
		if err != nil {
			return nil, fmt.Errorf("failed to inspect %s: %w", p, err)
		}

		status := EntryStatus{Entry: p, Size: size, Marker: p.IsKeepFile()}
		switch {
		case !exists:
			status.State = StateMissing
		case size == 0:
			status.State = StateEmpty
		default:
			status.State = StatePresent
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// WriteManifest saves m to path. An existing file is only replaced when
// force is set or the user confirms. It reports whether the file was written.
func (ctx *AppContext) WriteManifest(path string, m *manifest.Manifest, force bool) (bool, error) {
	exists, err := ctx.FS.FileExists(path)
	if err != nil {
		return false, err
	}

	if exists && !force {
		if ctx.UI.IsNonInteractive() {
			return false, fmt.Errorf("manifest %s already exists (use --force to overwrite)", path)
		}
		overwrite, err := ctx.UI.PromptYesNo(fmt.Sprintf("%s already exists. Overwrite?", path), false)
		if err != nil {
			return false, err
		}
		if !overwrite {
			ctx.UI.Warningf("%s already exists, left unchanged", path)
			return false, nil
		}
	}

	if err := manifest.Save(path, m); err != nil {
		return false, err
	}
	return true, nil
}
