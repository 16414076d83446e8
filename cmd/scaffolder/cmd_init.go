package main

import (
	"github.com/spf13/cobra"
	"github.com/zoro11031/project-scaffolder/internal/cli"
	"github.com/zoro11031/project-scaffolder/internal/config"
)

var (
	initForce      bool
	initSaveConfig bool
)

var initCmd = &cobra.Command{
	Use:   "init [manifest]",
	Short: "Write the path list to a manifest file",
	Long: `Write the built-in path list to a manifest file so it can be edited
and used with --manifest.

The format follows the file extension: .yaml/.yml, .toml, anything else is
plain text with one path per line. Defaults to scaffold.yaml.

Use --save-config to record the manifest in the settings file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: initManifest,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing manifest without asking")
	initCmd.Flags().BoolVar(&initSaveConfig, "save-config", false, "Store the manifest path as MANIFEST_FILE in the settings file")
	initCmd.Flags().StringVarP(&runOpts.Project, "project", "p", "", "Project name used by the built-in layout")
	rootCmd.AddCommand(initCmd)
}

func initManifest(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}

	path := cli.DefaultManifestFile
	if len(args) == 1 {
		path = args[0]
	}

	m, err := ctx.BuiltinManifest(runOpts.Project)
	if err != nil {
		return err
	}

	written, err := ctx.WriteManifest(path, m, initForce)
	if err != nil || !written {
		return err
	}
	ctx.UI.Successf("Wrote %d entries to %s", len(m.Paths), path)

	if initSaveConfig {
		if err := ctx.Config.Set(config.KeyManifestFile, path); err != nil {
			return err
		}
		ctx.UI.Successf("Saved %s=%s to %s", config.KeyManifestFile, path, ctx.Config.FilePath())
	}

	return nil
}
