package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/Mshel/hunthat/internal/game"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	Host                string // Address the SSH server binds to
	Port                string // Port the SSH server listens on
	PrivateKeyPath      string // Host key for the SSH server
	DBPath              string // sqlite file for the session journal
	LogLevel            log.Level
	MaxConnectionsPerIP int
	GridHeight          float64
	GridWidth           float64
	HolePercent         float64
	InputMode           game.InputMode
	Seed                int64 // 0 seeds from the clock
}

// Load reads an optional .env file and then the environment.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("could not load env file: %w", err)
		}
		log.Debug(".env file not found, using environment only")
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function, applying defaults for unset keys.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	env := envReader{lookup: lookup}

	cfg := Config{
		Host:                env.getString("HUNTHAT_HOST", "0.0.0.0"),
		Port:                env.getString("HUNTHAT_PORT", "6996"),
		PrivateKeyPath:      env.getString("HUNTHAT_PRIVATE_KEY_PATH", ".ssh/hunthat_ed25519"),
		DBPath:              env.getString("HUNTHAT_DB_PATH", "sessions.db"),
		MaxConnectionsPerIP: env.getInt("HUNTHAT_MAX_CONNECTIONS_PER_IP", 2),
		GridHeight:          env.getFloat("HUNTHAT_HEIGHT", game.DefaultGridHeight),
		GridWidth:           env.getFloat("HUNTHAT_WIDTH", game.DefaultGridWidth),
		HolePercent:         env.getFloat("HUNTHAT_HOLE_PERCENT", game.DefaultHolePercent),
		Seed:                int64(env.getInt("HUNTHAT_SEED", 0)),
	}

	level, err := log.ParseLevel(env.getString("HUNTHAT_LOG_LEVEL", "info"))
	if err != nil {
		env.errs = append(env.errs, fmt.Errorf("HUNTHAT_LOG_LEVEL: %w", err))
	}
	cfg.LogLevel = level

	mode, err := game.ParseInputMode(env.getString("HUNTHAT_INPUT_MODE", "wasd"))
	if err != nil {
		env.errs = append(env.errs, fmt.Errorf("HUNTHAT_INPUT_MODE: %w", err))
	}
	cfg.InputMode = mode

	env.checkDimension("HUNTHAT_HEIGHT", cfg.GridHeight)
	env.checkDimension("HUNTHAT_WIDTH", cfg.GridWidth)

	if len(env.errs) > 0 {
		return cfg, errors.Join(env.errs...)
	}
	return cfg, nil
}

// GridConfig returns the clamped generation parameters.
func (c Config) GridConfig() game.GridConfig {
	return game.NewGridConfig(c.GridHeight, c.GridWidth, c.HolePercent)
}

func (c Config) Address() string {
	return c.Host + ":" + c.Port
}

type envReader struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (e *envReader) getString(key, defaultValue string) string {
	if value, exists := e.lookup(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func (e *envReader) getInt(key string, defaultValue int) int {
	raw, exists := e.lookup(key)
	if !exists || raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s must be an integer: %w", key, err))
		return defaultValue
	}
	return value
}

func (e *envReader) getFloat(key string, defaultValue float64) float64 {
	raw, exists := e.lookup(key)
	if !exists || raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s must be a number: %w", key, err))
		return defaultValue
	}
	return value
}

// checkDimension rejects grid sizes the generator would silently cap.
func (e *envReader) checkDimension(key string, value float64) {
	if value > game.MaxGridDimension {
		e.errs = append(e.errs, fmt.Errorf("%s must be at most %d", key, game.MaxGridDimension))
	}
}
