package main

import (
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scaffold the project",
	Long: `Create every directory and empty file in the path list.

Existing directories are reused. A file that already has content is left
untouched and logged as already existing; an empty file is recreated.
The run stops at the first filesystem error.`,
	Args: cobra.NoArgs,
	RunE: runScaffold,
}

func init() {
	addRunFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func runScaffold(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}

	result, err := ctx.RunScaffold(runOpts)
	if err != nil {
		return err
	}

	if runOpts.DryRun {
		ctx.UI.Infof("Dry run: %d file(s) would be created, %d already exist", len(result.Created), len(result.Skipped))
		return nil
	}
	ctx.UI.Successf("Scaffold complete: %d file(s) created, %d already existed", len(result.Created), len(result.Skipped))
	return nil
}
