package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/zoro11031/project-scaffolder/internal/cli"
	"github.com/zoro11031/project-scaffolder/pkg/version"
)

var (
	configPath     string
	nonInteractive bool
	runOpts        cli.RunOptions
)

var rootCmd = &cobra.Command{
	Use:   "scaffolder",
	Short: "Project skeleton scaffolder",
	Long: `Creates the directory and file skeleton of a new project.

For every path in the list the parent directories are created and an empty
file is placed at the path unless a file with content is already there.
Every action is logged with a timestamp.

Without a manifest the built-in ML project layout is used.
Run without arguments to scaffold into the current directory.`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	Args:          cobra.NoArgs,
	RunE:          runScaffold,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Launch interactive menu",
	Long:  `Launch the interactive menu interface for scaffolding.`,
	RunE:  runInteractiveMenu,
}

func init() {
	rootCmd.Version = version.Short()
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default ./.scaffolder.conf)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Never prompt; fail instead")
	addRunFlags(rootCmd)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(menuCmd)
}

// addRunFlags registers the flags that shape a scaffold run
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&runOpts.Project, "project", "p", "", "Project name used by the built-in layout")
	cmd.Flags().StringVarP(&runOpts.ManifestFile, "manifest", "m", "", "Manifest file listing paths (.yaml, .toml or plain text)")
	cmd.Flags().StringVarP(&runOpts.TargetDir, "dir", "d", "", "Directory to scaffold into")
	cmd.Flags().BoolVar(&runOpts.DryRun, "dry-run", false, "Log planned actions without touching the disk")
}

func newContext() (*cli.AppContext, error) {
	ctx, err := cli.NewAppContextWithOptions(configPath, nonInteractive)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize context: %w", err)
	}
	return ctx, nil
}

func runInteractiveMenu(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}

	menu := cli.NewMenu(ctx, runOpts)
	return menu.Show()
}

// execute runs the command line in args and returns the process exit code
func execute(args []string, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stderr))
}
