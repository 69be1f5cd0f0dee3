package root

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"levelup/internal/domain"
	"levelup/internal/ui"
)

func newWorkoutsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workouts [day]",
		Short: "Show the workout plan",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := domain.WorkoutPlan()
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("day must be a number: %w", err)
				}
				day, ok := domain.FindWorkoutDay(plan, n)
				if !ok {
					return fmt.Errorf("no workout day %d (plan has %d days)", n, len(plan))
				}
				plan = []domain.WorkoutDay{day}
			}

			out := cmd.OutOrStdout()
			for _, d := range plan {
				fmt.Fprintln(out, ui.Heading(ui.IconMuscle, fmt.Sprintf("Day %d: %s", d.Day, d.Title)))
				for _, ex := range d.Exercises {
					line := fmt.Sprintf("  - %s %s", ex.Name, ui.Key.Render(ex.Sets))
					if ex.Notes != "" {
						line += " " + ui.Muted.Render(ex.Notes)
					}
					fmt.Fprintln(out, line)
				}
				fmt.Fprintln(out, "")
			}
			return nil
		},
	}
	return cmd
}
