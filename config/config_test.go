package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"TELEGRAM_TOKEN", "SHIFT_TRACKER_DB", "SHIFT_TRACKER_LOG_LEVEL", "SHIFT_TRACKER_TZ",
		"SHIFT_TRACKER_HOURLY_RATE", "SHIFT_TRACKER_OWNER_ID", "SHIFT_TRACKER_CONFIG",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "shift-tracker.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 15.0, cfg.HourlyRate)
	assert.ErrorIs(t, cfg.RequireToken(), ErrNoToken{})
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
db_path: /var/lib/shifts.db
timezone: UTC
hourly_rate: 12.5
owner_id: 42
`), 0o600))

	t.Setenv("SHIFT_TRACKER_HOURLY_RATE", "18")
	t.Setenv("TELEGRAM_TOKEN", "tok")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/shifts.db", cfg.DBPath)
	assert.Equal(t, 18.0, cfg.HourlyRate)
	assert.Equal(t, int64(42), cfg.OwnerID)
	assert.NoError(t, cfg.RequireToken())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHIFT_TRACKER_HOURLY_RATE", "lots")
	_, err := LoadConfig("")
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("SHIFT_TRACKER_TZ", "Mars/Olympus_Mons")
	_, err = LoadConfig("")
	assert.Error(t, err)

	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hourly_rate: ["), 0o600))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}
