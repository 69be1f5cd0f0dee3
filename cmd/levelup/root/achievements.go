package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"levelup/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "List achievements and which are unlocked",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, cleanup, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			items, err := e.summary.Achievements(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Achievements"))
			for _, a := range items {
				mark := ui.IconLock
				title := ui.Muted.Render(a.Title)
				if a.Unlocked {
					mark = a.Icon
					title = ui.Gold.Render(a.Title)
				}
				fmt.Fprintf(out, "%s %s %s\n   %s\n", mark, title, ui.Muted.Render(fmt.Sprintf("(+%d XP)", a.XPReward)), a.Description)
			}
			return nil
		},
	}
	return cmd
}
