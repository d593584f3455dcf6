package observability_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/b64webp/b64webp/internal/convert"
	"github.com/b64webp/b64webp/internal/observability"
)

func TestInitCLILogger(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		observability.InitCLILogger("b64webp-test", false)
		require.NotNil(t, observability.CLILogger)

		observability.CLILogger.Info("Test CLI log message", zap.String("test", "value"))
	})

	t.Run("verbose", func(t *testing.T) {
		observability.InitCLILogger("b64webp-test", true)
		require.NotNil(t, observability.CLILogger)

		observability.CLILogger.Debug("Debug message", zap.String("mode", "verbose"))
	})

	t.Run("satisfies pipeline logger", func(t *testing.T) {
		observability.InitCLILogger("b64webp-test", false)
		var logger convert.Logger = observability.CLILogger
		logger.Info("info message", zap.Int("n", 1))
	})
}

func TestApplyLogLevelBeforeInit(t *testing.T) {
	observability.CLILogger = nil
	require.NotPanics(t, func() { observability.ApplyLogLevel("debug") })
}

func TestIsDebugLevel(t *testing.T) {
	require.True(t, observability.IsDebugLevel("debug"))
	require.True(t, observability.IsDebugLevel("trace"))
	require.False(t, observability.IsDebugLevel("info"))
	require.False(t, observability.IsDebugLevel("warning"))
	require.False(t, observability.IsDebugLevel(""))
}
