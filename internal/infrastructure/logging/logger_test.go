package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/younwookim/pacmaze/internal/infrastructure/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.LoggingConfig
		level zapcore.Level
	}{
		{"console debug", config.LoggingConfig{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{"json warn", config.LoggingConfig{Level: "warn", Format: "json"}, zapcore.WarnLevel},
		{"bad level falls back", config.LoggingConfig{Level: "loud", Format: "console"}, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, log)

			assert.True(t, log.Core().Enabled(tt.level))
			if tt.level > zapcore.DebugLevel {
				assert.False(t, log.Core().Enabled(tt.level-1))
			}
		})
	}
}
