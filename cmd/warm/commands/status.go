package commands

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/warm/internal/core/domain"
	"go.trai.ch/warm/internal/ui/output"
	"go.trai.ch/warm/internal/ui/style"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache:status",
		Short: "Show whether each configured artifact is fresh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses, err := c.app.Status(cmd.Context())
			if err != nil {
				return err
			}

			renderStatus(cmd.OutOrStdout(), statuses)

			check, _ := cmd.Flags().GetBool("check")
			if check {
				for _, s := range statuses {
					if s.State == domain.EntryStale || s.State == domain.EntryAbsent {
						return domain.ErrCacheNotFresh
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("check", false, "Fail when any configured artifact is stale or absent")
	return cmd
}

// renderStatus prints one line per entry. Colour is used only when w is a terminal.
func renderStatus(w io.Writer, statuses []domain.EntryStatus) {
	out := output.NewWithProfile(w, func() termenv.Profile { return output.ProfileFor(w) })

	for _, s := range statuses {
		mark := style.ForState(s.State)
		color := out.Color(string(mark.Color))
		_, _ = fmt.Fprintf(w, "%s %s %s\n",
			out.String(mark.Icon).Foreground(color),
			out.String(fmt.Sprintf("%-6s", s.State)).Foreground(color),
			s.Key,
		)
	}
}
