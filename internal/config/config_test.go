package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelup/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "levelup.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, config.DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, 5*time.Second, cfg.ToastTTL)
	assert.Equal(t, "Traveler", cfg.ProfileName)

	missing, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, cfg, missing)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeFile(t, `
addr: ":9090"
toast_ttl: 3s
timezone: UTC
log:
  level: debug
store:
  driver: postgres
  postgres_dsn: postgres://from-file
`)
	t.Setenv("DATABASE_URL", "postgres://from-env")
	t.Setenv("LEVELUP_ADDR", ":7070")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, 3*time.Second, cfg.ToastTTL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "postgres://from-env", cfg.Store.PostgresDSN)
	assert.Equal(t, "levelup:", cfg.Store.Redis.Prefix, "unset nested fields keep defaults")

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{"bad yaml", "addr: [", nil},
		{"unknown driver", "store:\n  driver: mongo\n", nil},
		{"postgres without dsn", "store:\n  driver: postgres\n", nil},
		{"redis without addr", "store:\n  driver: redis\n", nil},
		{"bad timezone", "timezone: Mars/Olympus\n", nil},
		{"zero ttl", "toast_ttl: 0s\n", nil},
		{"bad redis db", "", map[string]string{"REDIS_DB": "one"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := config.Load(writeFile(t, tc.body))
			assert.Error(t, err)
		})
	}
}
