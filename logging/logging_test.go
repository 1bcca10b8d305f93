package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/bacon/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{" WARN ", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"info", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, logging.ParseLevel(tc.in), "level %q", tc.in)
	}
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		l, err := logging.NewLogger(logging.Options{Format: format, Level: "warn", RunID: "r1"})
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	}
}
