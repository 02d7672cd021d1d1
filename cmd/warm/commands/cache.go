package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/warm/internal/app"
)

func (c *CLI) newClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache:clear",
		Short: "Clear the cache and warm up every configured artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noWarmup, _ := cmd.Flags().GetBool("no-warmup")
			return c.app.Clear(cmd.Context(), app.ClearOptions{NoWarmup: noWarmup})
		},
	}
	cmd.Flags().Bool("no-warmup", false, "Only clear the cache without regenerating artifacts")
	return cmd
}

func (c *CLI) newWarmupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cache:warmup",
		Short: "Regenerate every configured artifact that is not fresh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Warmup(cmd.Context())
		},
	}
}

func (c *CLI) newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache:get KEY",
		Short: "Print the path of a fresh artifact, regenerating it when needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noDebug, _ := cmd.Flags().GetBool("no-debug")
			path, err := c.app.Get(cmd.Context(), args[0], app.GetOptions{NoDebug: noDebug})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().Bool("no-debug", false, "Serve an existing artifact without checking its inputs")
	return cmd
}
