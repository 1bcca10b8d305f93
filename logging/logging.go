// Package logging builds the zap logger used by the CLI.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the encoder and level of a logger.
type Options struct {
	Format string // "console" or "json"
	Level  string // debug|info|warn|error
	RunID  string // attached to every entry when set
}

// NewLogger builds a zap logger from opts. Logs go to stderr so that the
// rendered path on stdout stays clean.
func NewLogger(opts Options) (*zap.Logger, error) {
	var zapCfg zap.Config
	if strings.EqualFold(opts.Format, "json") {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	zapCfg.Level = zap.NewAtomicLevelAt(ParseLevel(opts.Level))

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	if opts.RunID != "" {
		logger = logger.With(zap.String("run_id", opts.RunID))
	}

	return logger, nil
}

// ParseLevel maps a level name to a zapcore.Level; unknown names are info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
