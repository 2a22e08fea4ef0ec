package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Mshel/hunthat/internal/game"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:6996", cfg.Address())
	assert.Equal(t, "sessions.db", cfg.DBPath)
	assert.Equal(t, log.InfoLevel, cfg.LogLevel)
	assert.Equal(t, 2, cfg.MaxConnectionsPerIP)
	assert.Equal(t, game.ModeWASD, cfg.InputMode)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, game.GridConfig{Height: 15, Width: 10, HolePercent: 35}, cfg.GridConfig())
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(map[string]string{
		"HUNTHAT_HOST":                   "127.0.0.1",
		"HUNTHAT_PORT":                   "2222",
		"HUNTHAT_LOG_LEVEL":              "debug",
		"HUNTHAT_MAX_CONNECTIONS_PER_IP": "5",
		"HUNTHAT_HEIGHT":                 "6.7",
		"HUNTHAT_WIDTH":                  "1",
		"HUNTHAT_HOLE_PERCENT":           "99",
		"HUNTHAT_INPUT_MODE":             "letters",
		"HUNTHAT_SEED":                   "1234",
	}))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:2222", cfg.Address())
	assert.Equal(t, log.DebugLevel, cfg.LogLevel)
	assert.Equal(t, 5, cfg.MaxConnectionsPerIP)
	assert.Equal(t, game.ModeLetters, cfg.InputMode)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, game.GridConfig{Height: 6, Width: 2, HolePercent: 80}, cfg.GridConfig())
}

func TestFromEnvCollectsErrors(t *testing.T) {
	_, err := FromEnv(lookupFrom(map[string]string{
		"HUNTHAT_MAX_CONNECTIONS_PER_IP": "many",
		"HUNTHAT_HEIGHT":                 "tall",
		"HUNTHAT_INPUT_MODE":             "joystick",
	}))
	require.Error(t, err)

	assert.Contains(t, err.Error(), "HUNTHAT_MAX_CONNECTIONS_PER_IP must be an integer")
	assert.Contains(t, err.Error(), "HUNTHAT_HEIGHT must be a number")
	assert.Contains(t, err.Error(), "HUNTHAT_INPUT_MODE")
}

func TestFromEnvRejectsOversizedGrid(t *testing.T) {
	_, err := FromEnv(lookupFrom(map[string]string{
		"HUNTHAT_HEIGHT": "1e9",
		"HUNTHAT_WIDTH":  "Inf",
	}))
	require.Error(t, err)

	assert.Contains(t, err.Error(), "HUNTHAT_HEIGHT must be at most 100")
	assert.Contains(t, err.Error(), "HUNTHAT_WIDTH must be at most 100")

	cfg, err := FromEnv(lookupFrom(map[string]string{
		"HUNTHAT_HEIGHT": "100",
		"HUNTHAT_WIDTH":  "100",
	}))
	require.NoError(t, err)
	assert.Equal(t, game.GridConfig{Height: 100, Width: 100, HolePercent: 35}, cfg.GridConfig())
}

func TestLoadReadsEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("HUNTHAT_PORT=7007\nHUNTHAT_DB_PATH=/tmp/hat.db\n"), 0o600))
	t.Setenv("HUNTHAT_PORT", "")
	os.Unsetenv("HUNTHAT_PORT")
	t.Setenv("HUNTHAT_DB_PATH", "")
	os.Unsetenv("HUNTHAT_DB_PATH")

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "7007", cfg.Port)
	assert.Equal(t, "/tmp/hat.db", cfg.DBPath)
}

func TestLoadWithoutEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
