package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"levelup/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show completions for recent days",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, cleanup, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			items, err := e.summary.History(ctx, days)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, fmt.Sprintf("Last %d days", len(items))))
			for _, d := range items {
				done := ui.Muted.Render("-")
				if len(d.Done) > 0 {
					done = strings.Join(d.Done, ", ")
				}
				fmt.Fprintf(out, "%s %s %5.1f%%  %s\n", d.Day, ui.Bar(d.Percent, 10), d.Percent, done)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 30, "number of days to show")
	return cmd
}
