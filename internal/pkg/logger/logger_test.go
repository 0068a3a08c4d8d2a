package logger_test

import (
	"testing"

	"purchasing/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("development logger enables debug", func(t *testing.T) {
		l, err := logger.New("development")

		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("production logger starts at info", func(t *testing.T) {
		l, err := logger.New("production")

		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
		assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("unknown environments fall back to production", func(t *testing.T) {
		l, err := logger.New("")

		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	})
}
