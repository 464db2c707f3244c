// Package commands implements the CLI commands for the mrjar archive builder.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/mrjar/internal/app"
	"go.trai.ch/mrjar/internal/build"
	"go.trai.ch/mrjar/internal/core/domain"
)

// CLI represents the command line interface for mrjar.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Compile(ctx context.Context, opts app.Options) (domain.RunReport, error)
	Package(ctx context.Context, opts app.Options) (domain.ArchiveLayout, error)
	Build(ctx context.Context, opts app.Options) (domain.ArchiveLayout, error)
	Plan(ctx context.Context, opts app.Options) ([]domain.CompilationPass, error)
	Clean(ctx context.Context, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "mrjar",
		Short:         "Build multi-release archives from per-release source trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "",
		"Path to "+domain.ConfigFileName+" (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().StringP("multi-release", "m", "",
		"Multi-release mode: auto, always or never (default: from configuration)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCompileCmd())
	rootCmd.AddCommand(c.newPackageCmd())
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func options(cmd *cobra.Command) app.Options {
	config, _ := cmd.Flags().GetString("config")
	mode, _ := cmd.Flags().GetString("multi-release")
	return app.Options{
		ConfigPath:   config,
		MultiRelease: mode,
	}
}
