package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"levelup/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP, streak and today's progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, cleanup, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			d, err := e.summary.Dashboard(ctx)
			if err != nil {
				return err
			}
			p := d.Progress
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, d.Name+" · "+p.Title))
			fmt.Fprintln(out, ui.LabelValue("Level", p.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d (%d/%d into level, next at %d)", p.XP, p.IntoLevel, p.Span, p.Next)))
			fmt.Fprintln(out, ui.Bar(p.Percent, 30))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconFire, d.Streak)))
			fmt.Fprintln(out, ui.LabelValue("Completed", d.Completed))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📅 Today "+d.Today))
			fmt.Fprintf(out, "%d of %d done, %d left\n", d.Done, d.Total, d.Remaining)
			fmt.Fprintln(out, ui.Bar(d.Percent, 30))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Last 7 days"))
			for _, pt := range d.Week {
				fmt.Fprintf(out, "%s %s %s\n", ui.Muted.Render(pt.Weekday), pt.Day, ui.Bar(percent(pt.Done, d.Total), 12))
			}
			return nil
		},
	}
	return cmd
}

func percent(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total) * 100
}
