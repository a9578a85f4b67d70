// Package commands implements the CLI commands for conda-portable.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ShekharNarayanan/conda-portable/internal/app"
	"github.com/ShekharNarayanan/conda-portable/internal/build"
)

// CLI represents the command line interface for conda-portable.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "conda-portable",
		Short:         "Make a conda environment file portable across platforms and verify it with conda-lock",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runRoot,
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

	rootCmd.Flags().String("env", "", "Path to the exported environment file")
	rootCmd.Flags().String("from_platform", "", "Platform the environment was exported on (Windows, Linux or MacOS)")
	_ = rootCmd.MarkFlagRequired("env")
	_ = rootCmd.MarkFlagRequired("from_platform")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runRoot(cmd *cobra.Command, _ []string) error {
	envPath, _ := cmd.Flags().GetString("env")
	fromPlatform, _ := cmd.Flags().GetString("from_platform")

	return c.app.Run(cmd.Context(), app.RunOptions{
		EnvPath:      envPath,
		FromPlatform: fromPlatform,
	})
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
