package root

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelup/internal/adapter/sqlite"
	"levelup/internal/domain"
)

func useStore(t *testing.T, driver string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "levelup.db")
	t.Setenv("LEVELUP_STORE", driver)
	t.Setenv("LEVELUP_SQLITE_PATH", path)
	t.Setenv("LEVELUP_TIMEZONE", "UTC")
	t.Setenv("LEVELUP_LOG_LEVEL", "error")
	return path
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeBackup(t *testing.T, st domain.State) string {
	t.Helper()
	data, err := json.Marshal(map[string]any{
		"habits":      st.Habits,
		"completions": st.Completions,
		"stats":       st.Stats,
	})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func storedStats(t *testing.T, path string) domain.State {
	t.Helper()
	db, err := sqlite.Open(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	blobs, err := db.GetBlobs(context.Background(), domain.BlobKeys...)
	require.NoError(t, err)
	st, errs := domain.DecodeState(blobs, "")
	require.Empty(t, errs)
	return st
}

func TestToggleCommandOutput(t *testing.T) {
	useStore(t, "memory")

	out, err := run(t, newToggleCmd(), "h1", "zzz")
	require.NoError(t, err)
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "h1")
	assert.Contains(t, out, "+80 XP")
	assert.Contains(t, out, "unknown habit zzz")
}

func TestToggleCommandShowsUnlockToast(t *testing.T) {
	path := useStore(t, "sqlite")

	today := domain.DayKey(time.Now(), time.UTC)
	st := domain.DefaultState("Ana")
	for back := 1; back < 7; back++ {
		day, err := domain.ShiftDay(today, -back)
		require.NoError(t, err)
		st.Completions[day] = []string{"h1"}
	}
	_, err := run(t, newImportCmd(), writeBackup(t, st), "--yes")
	require.NoError(t, err)

	out, err := run(t, newToggleCmd(), "h1")
	require.NoError(t, err)
	assert.Contains(t, out, "Achievement unlocked")
	assert.Contains(t, out, "Iron Lungs")
	assert.Contains(t, out, "+500 XP")

	stored := storedStats(t, path)
	assert.Equal(t, 580, stored.Stats.XP)
	assert.True(t, stored.Stats.HasUnlocked("first_week_smoke_free"))
}

func TestImportCommandRequiresConfirmation(t *testing.T) {
	path := useStore(t, "sqlite")

	_, err := run(t, newToggleCmd(), "h2")
	require.NoError(t, err)

	st := domain.DefaultState("Bo")
	st.Stats.XP = 900
	file := writeBackup(t, st)

	_, err = run(t, newImportCmd(), file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")

	kept := storedStats(t, path)
	assert.Equal(t, 40, kept.Stats.XP)
	assert.Equal(t, domain.DefaultProfileName, kept.Stats.Name)

	out, err := run(t, newImportCmd(), file, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "imported")

	replaced := storedStats(t, path)
	assert.Equal(t, 900, replaced.Stats.XP)
	assert.Equal(t, "Bo", replaced.Stats.Name)
	assert.Empty(t, replaced.Completions)
}

func TestImportCommandRejectsInvalidBackup(t *testing.T) {
	useStore(t, "memory")
	file := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"habits":[]}`), 0o600))

	_, err := run(t, newImportCmd(), file, "--yes")
	assert.ErrorContains(t, err, "invalid backup")
}
