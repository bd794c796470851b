package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/ginjaninja78/people-csv-loader/internal/config"
)

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		name  string
		cfg   config.LoggingConfig
		level zapcore.Level
	}{
		{"Debug console", config.LoggingConfig{Level: "debug", Encoding: "console"}, zapcore.DebugLevel},
		{"Warn json", config.LoggingConfig{Level: "WARN", Encoding: "json"}, zapcore.WarnLevel},
		{"Unknown level falls back to info", config.LoggingConfig{Level: "chatty"}, zapcore.InfoLevel},
		{"Empty settings", config.LoggingConfig{}, zapcore.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := NewLogger(tc.cfg)
			require.NoError(t, err)
			require.NotNil(t, logger)

			assert.True(t, logger.Core().Enabled(tc.level))
			if tc.level > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tc.level-1))
			}
		})
	}
}
