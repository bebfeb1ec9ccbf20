// Package commands implements the CLI commands for stamp.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/stamp/internal/app"
	"go.trai.ch/stamp/internal/build"
)

// CLI represents the command line interface for stamp.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	logJSON func(bool)
	verbose func(io.Writer)
}

// Application represents the application logic interface.
type Application interface {
	Generate(ctx context.Context, opts app.TargetOptions) error
	Verify(ctx context.Context, opts app.TargetOptions) error
	Show(ctx context.Context, w io.Writer, opts app.TargetOptions) error
	Watch(ctx context.Context, opts app.TargetOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
}

// Option configures the CLI.
type Option func(*CLI)

// WithLogJSON sets the hook applying the --log-json flag.
func WithLogJSON(fn func(bool)) Option {
	return func(c *CLI) { c.logJSON = fn }
}

// WithVerbose sets the hook applying the --verbose flag. It receives the stream
// stage progress is printed to.
func WithVerbose(fn func(io.Writer)) Option {
	return func(c *CLI) { c.verbose = fn }
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "stamp",
		Short:         "Generate version metadata packages for Go builds",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	// Registered before the version flag so that -v stays with --verbose.
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print every generation stage")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRun = c.applyGlobalFlags

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newVerifyCmd())
	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) applyGlobalFlags(cmd *cobra.Command, _ []string) {
	if jsonLogs, _ := cmd.Flags().GetBool("log-json"); jsonLogs && c.logJSON != nil {
		c.logJSON(true)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose && c.verbose != nil {
		c.verbose(cmd.ErrOrStderr())
	}
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
