package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run(level, func(t *testing.T) {
			logger, err := NewLogger(level)
			require.NoError(t, err)

			want, err := zapcore.ParseLevel(level)
			require.NoError(t, err)
			assert.True(t, logger.Desugar().Core().Enabled(want))
			assert.False(t, logger.Desugar().Core().Enabled(want-1))
		})
	}
}

func TestNewLoggerUnknownLevel(t *testing.T) {
	_, err := NewLogger("loud")
	assert.ErrorContains(t, err, "cannot parse verbosity")
}
