// Package commands implements the CLI commands for the warm cache tool.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/warm/internal/app"
	"go.trai.ch/warm/internal/build"
	"go.trai.ch/warm/internal/core/domain"
)

// CLI represents the command line interface for warm.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	jsonLogs    bool
	metricsFile string
}

// Application represents the application logic interface.
type Application interface {
	Clear(ctx context.Context, opts app.ClearOptions) error
	Warmup(ctx context.Context) error
	Get(ctx context.Context, key string, opts app.GetOptions) (string, error)
	Status(ctx context.Context) ([]domain.EntryStatus, error)
	Watch(ctx context.Context) error
	SetJSON(enabled bool)
	WriteMetrics(path string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "warm",
		Short:         "A compiled configuration cache",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			c.app.SetJSON(c.jsonLogs)
		},
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

	rootCmd.PersistentFlags().BoolVar(&c.jsonLogs, "json", false, "Write log output as JSON")
	rootCmd.PersistentFlags().StringVar(&c.metricsFile, "metrics-file", "",
		"Write cache metrics in Prometheus text format to this file on exit")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newClearCmd())
	rootCmd.AddCommand(c.newWarmupCmd())
	rootCmd.AddCommand(c.newGetCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
// Metrics are written even when the command fails.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()

	if c.metricsFile != "" {
		if werr := c.app.WriteMetrics(c.metricsFile); werr != nil {
			err = errors.Join(err, werr)
		}
	}
	return err
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
