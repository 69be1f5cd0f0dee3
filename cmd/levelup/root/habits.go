package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"levelup/internal/domain"
	"levelup/internal/ui"
)

func newHabitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habits",
		Short: "List habits and today's completions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, cleanup, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := e.progress.Snapshot(ctx)
			if err != nil {
				return err
			}
			today := e.progress.Today()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Habits "+today))
			for _, c := range domain.Categories {
				var rows []domain.Habit
				for _, h := range st.Habits {
					if h.Category == c {
						rows = append(rows, h)
					}
				}
				if len(rows) == 0 {
					continue
				}
				fmt.Fprintln(out, ui.H2.Render(string(c)))
				for _, h := range rows {
					fmt.Fprintf(out, "  %s %s %s %s %s\n",
						ui.Check(st.Completions.Has(today, h.ID)), h.Icon, h.Name,
						ui.Gold.Render(fmt.Sprintf("+%d XP", h.XP)), ui.Muted.Render("["+h.ID+"]"))
				}
			}
			return nil
		},
	}
	cmd.AddCommand(newHabitsAddCmd())
	return cmd
}

func newHabitsAddCmd() *cobra.Command {
	var category, icon string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, cleanup, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			h, err := e.progress.AddHabit(ctx, args[0], domain.Category(category), icon)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("➕ added")+" "+h.Icon+" "+h.Name+" "+ui.Muted.Render("["+h.ID+"]"))
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", string(domain.CategoryHealth), "Health, Productivity, Mind or Lifestyle")
	cmd.Flags().StringVar(&icon, "icon", domain.DefaultHabitIcon, "display glyph")
	return cmd
}
