package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoro11031/project-scaffolder/internal/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show path entries and their state",
	Long:  `Display every entry in the path list with its current state on disk (missing, empty or present).`,
	Args:  cobra.NoArgs,
	RunE:  showEntries,
}

func init() {
	addRunFlags(listCmd)
	rootCmd.AddCommand(listCmd)
}

func showEntries(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}

	plan, err := ctx.ResolvePlan(runOpts)
	if err != nil {
		return err
	}

	statuses, err := ctx.Inspect(plan)
	if err != nil {
		return err
	}

	ctx.UI.Header("Scaffold Entries")
	ctx.UI.Infof("Source: %s", plan.Source)
	ctx.UI.Infof("Target: %s", plan.Options.Root)
	ctx.UI.Print("")

	if err := cli.RenderEntries(cmd.OutOrStdout(), statuses); err != nil {
		return err
	}

	counts := cli.Summarize(statuses)
	ctx.UI.Separator()
	ctx.UI.Info(fmt.Sprintf("%d present, %d empty, %d missing",
		counts[cli.StatePresent], counts[cli.StateEmpty], counts[cli.StateMissing]))

	return nil
}
