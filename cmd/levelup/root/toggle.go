package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"levelup/internal/domain"
	"levelup/internal/ui"
)

func newToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <habit-id>...",
		Short: "Mark habits done for today, or undo them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, cleanup, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			for _, id := range args {
				before, err := e.progress.Snapshot(ctx)
				if err != nil {
					return err
				}
				res, err := e.progress.Toggle(ctx, id)
				if err != nil {
					return err
				}
				if !res.Applied {
					fmt.Fprintln(out, ui.Warn.Render("⚠️ unknown habit "+id))
					continue
				}
				verb := ui.Good.Render(ui.IconDone + " done")
				if !res.Completed {
					verb = ui.Muted.Render("↩ undone")
				}
				fmt.Fprintf(out, "%s %s %s\n", verb, id, ui.Gold.Render(fmt.Sprintf("%+d XP", res.Delta.XP)))
				if res.Stats.Level > before.Stats.Level {
					fmt.Fprintln(out, ui.Gold.Render(fmt.Sprintf("LEVEL UP %s %d", ui.IconBolt, res.Stats.Level)))
				}
			}

			for _, n := range e.notes.Drain() {
				fmt.Fprintln(out, toast(n.Unlock))
			}
			return nil
		},
	}
	return cmd
}

func toast(u domain.Unlock) string {
	body := ui.Gold.Render(ui.IconTrophy+" Achievement unlocked") + "\n" +
		u.Icon + " " + u.Title + "\n" +
		ui.Muted.Render(u.Description) + "\n" +
		ui.Good.Render(fmt.Sprintf("+%d XP", u.XPReward))
	return ui.Toast.Render(body)
}
