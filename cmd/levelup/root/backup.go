package root

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"levelup/internal/app"
	"levelup/internal/ui"
)

func newExportCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a backup file of all habits, completions and stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, cleanup, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			b, err := e.backups.Export(ctx)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, b.Filename)
			if err := os.WriteFile(path, b.Data, 0o600); err != nil {
				return fmt.Errorf("write backup: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Good.Render(ui.IconBox+" exported")+" "+path)
			fmt.Fprintln(out, ui.LabelValue("blake2b-256", b.Digest))
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "directory to write the backup into")
	return cmd
}

func newImportCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data with a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read backup: %w", err)
			}
			if _, err := app.ParseBackup(data); err != nil {
				return err
			}
			if !yes {
				return errors.New("import replaces all current data; re-run with --yes to confirm")
			}

			ctx := context.Background()
			e, cleanup, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := e.backups.Import(ctx, data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d habits, %d days, %d XP\n",
				ui.Good.Render(ui.IconBox+" imported"), len(st.Habits), len(st.Completions), st.Stats.XP)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm replacing all current data")
	return cmd
}
