// Package config resolves CLI settings from flags, environment variables
// and an optional .env file. Flags win over the environment; the
// environment wins over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DefaultCenter is the center actor used when no second actor is given.
const DefaultCenter = "Kevin Bacon (I)"

// Sentinel errors for configuration validation.
var (
	ErrMissingDataFile = errors.New("config: data file is required")
	ErrMissingActor    = errors.New("config: actor is required")
	ErrBadLogFormat    = errors.New("config: log format must be json or console")
	ErrArgs            = errors.New("config: expected <data-file> <actor> [center-actor]")
)

// Config controls a CLI run.
type Config struct {
	RunID       string
	DataFile    string
	Actor       string
	Center      string
	LogFormat   string
	LogLevel    string
	MetricsPath string
	Stats       bool
}

// FromEnv returns a Config seeded from BACON_* environment variables.
func FromEnv() *Config {
	return &Config{
		RunID:       envOrDefault("BACON_RUN_ID", uuid.NewString()),
		DataFile:    envOrDefault("BACON_DATA_FILE", ""),
		Center:      envOrDefault("BACON_CENTER", DefaultCenter),
		LogFormat:   envOrDefault("BACON_LOG_FORMAT", "console"),
		LogLevel:    envOrDefault("BACON_LOG_LEVEL", "warn"),
		MetricsPath: envOrDefault("BACON_METRICS_PATH", ""),
		Stats:       envOrDefaultBool("BACON_STATS", false),
	}
}

// LoadDotEnv loads variables from the given files (default ".env") without
// overriding variables already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("config: load %s: %w", p, err)
		}
	}

	return nil
}

// BindFlags registers flags on fs using c's current values as defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.RunID, "run-id", c.RunID, "unique run identifier attached to logs")
	fs.StringVar(&c.Center, "center", c.Center, "center actor used when only one actor is given")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: json|console")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug|info|warn|error")
	fs.StringVar(&c.MetricsPath, "metrics-path", c.MetricsPath, "write prometheus metrics to this file")
	fs.BoolVar(&c.Stats, "stats", c.Stats, "log graph order and size after loading")
}

// ApplyArgs maps positional arguments: <data-file> <actor> [center-actor].
// A data file already set from the environment may be omitted.
func (c *Config) ApplyArgs(args []string) error {
	switch {
	case len(args) == 3:
		c.DataFile, c.Actor, c.Center = args[0], args[1], args[2]
	case len(args) == 2:
		c.DataFile, c.Actor = args[0], args[1]
	case len(args) == 1 && c.DataFile != "":
		c.Actor = args[0]
	default:
		return fmt.Errorf("%w: got %d arguments", ErrArgs, len(args))
	}

	return nil
}

// Validate checks required fields and enumerations.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return ErrMissingDataFile
	}
	if strings.TrimSpace(c.Actor) == "" {
		return ErrMissingActor
	}
	if strings.TrimSpace(c.Center) == "" {
		c.Center = DefaultCenter
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		return fmt.Errorf("%w: %q", ErrBadLogFormat, c.LogFormat)
	}

	return nil
}

func envOrDefault(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrDefaultBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "y":
		return true
	case "0", "false", "no", "n":
		return false
	default:
		return fallback
	}
}
