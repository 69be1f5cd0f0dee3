package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"levelup/internal/ui"
)

const Version = "0.1.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:           "levelup",
	Short:         "LevelUp: daily habits with XP, levels and achievements",
	Long:          "LevelUp tracks daily habits, turns completions into XP and levels, and unlocks achievements.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("LEVELUP_CONFIG"), "path to a YAML config file")

	rootCmd.AddCommand(
		newServeCmd(),
		newStatusCmd(),
		newHabitsCmd(),
		newToggleCmd(),
		newHistoryCmd(),
		newAchievementsCmd(),
		newWorkoutsCmd(),
		newRenameCmd(),
		newExportCmd(),
		newImportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
