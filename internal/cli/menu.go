package cli

import (
	"errors"
	"fmt"

	"github.com/zoro11031/project-scaffolder/internal/common"
	"github.com/zoro11031/project-scaffolder/internal/config"
	"github.com/zoro11031/project-scaffolder/internal/manifest"
)

// ErrExit is returned when the user chooses to exit the menu
var ErrExit = errors.New("exit")

// DefaultManifestFile is offered when writing a manifest interactively
const DefaultManifestFile = "scaffold.yaml"

var menuOptions = []string{
	"Scaffold project",
	"Preview scaffold (dry run)",
	"Show entries",
	"Write manifest",
	"Exit",
}

// Menu provides an interactive menu interface
type Menu struct {
	ctx  *AppContext
	opts RunOptions
}

// NewMenu creates a new Menu instance. opts seeds every action.
func NewMenu(ctx *AppContext, opts RunOptions) *Menu {
	return &Menu{ctx: ctx, opts: opts}
}

// Show displays the main menu and handles user input until the user exits
func (m *Menu) Show() error {
	m.ctx.UI.Header("Project Scaffolder")

	for {
		choice, err := m.ctx.UI.PromptSelect("What would you like to do?", menuOptions)
		if err != nil {
			return err
		}

		if err := m.handleChoice(choice); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			m.ctx.UI.Errorf("%v", err)
		}
		m.ctx.UI.Print("")
	}
}

// handleChoice processes the user's menu choice
func (m *Menu) handleChoice(choice int) error {
	switch choice {
	case 0:
		return m.scaffold(false)
	case 1:
		return m.scaffold(true)
	case 2:
		return m.showEntries()
	case 3:
		return m.writeManifest()
	case 4:
		return ErrExit
	default:
		return fmt.Errorf("invalid choice: %d", choice)
	}
}

func (m *Menu) scaffold(dryRun bool) error {
	opts := m.opts
	opts.DryRun = dryRun

	// Ask for a project only when nothing pins the path list
	if opts.ManifestFile == "" && opts.Project == "" &&
		m.ctx.Config.GetOrDefault(config.KeyManifestFile, "") == "" &&
		!m.ctx.Config.Exists(config.KeyProjectName) {
		project, err := m.promptProject()
		if err != nil {
			return err
		}
		opts.Project = project
	}

	result, err := m.ctx.RunScaffold(opts)
	if err != nil {
		return err
	}

	m.ctx.UI.Separator()
	if dryRun {
		m.ctx.UI.Infof("Dry run: %d file(s) would be created, %d already exist", len(result.Created), len(result.Skipped))
		return nil
	}
	m.ctx.UI.Successf("Scaffold complete: %d file(s) created, %d already existed", len(result.Created), len(result.Skipped))
	return nil
}

func (m *Menu) showEntries() error {
	plan, err := m.ctx.ResolvePlan(m.opts)
	if err != nil {
		return err
	}

	statuses, err := m.ctx.Inspect(plan)
	if err != nil {
		return err
	}

	m.ctx.UI.Infof("Source: %s", plan.Source)
	return RenderEntries(m.ctx.UI.Writer(), statuses)
}

func (m *Menu) writeManifest() error {
	path, err := m.ctx.UI.PromptInputWithValidation("Manifest path", DefaultManifestFile, common.ValidateNotEmpty)
	if err != nil {
		return err
	}

	plan, err := m.ctx.ResolvePlan(m.opts)
	if err != nil {
		return err
	}

	written, err := m.ctx.WriteManifest(path, plan.Manifest, false)
	if err != nil || !written {
		return err
	}

	m.ctx.UI.Successf("Wrote %d entries to %s", len(plan.Manifest.Paths), path)
	return nil
}

func (m *Menu) promptProject() (string, error) {
	return m.ctx.UI.PromptInputWithValidation("Project name", manifest.DefaultProjectName, common.ValidateProjectName)
}
