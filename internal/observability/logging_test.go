package observability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/spec-kit/user-management/internal/config"
	"github.com/spec-kit/user-management/internal/observability"
)

func TestNewLoggerDefaultsToJSONInfo(t *testing.T) {
	logger, err := observability.NewLogger(config.LoggerConfig{}, "user-management-service")
	require.NoError(t, err)
	defer func() { _ = logger.Sync() }()

	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLoggerHonorsLevelAndConsoleFormat(t *testing.T) {
	logger, err := observability.NewLogger(config.LoggerConfig{Level: "debug", Format: "console"}, "createadmin")
	require.NoError(t, err)
	defer func() { _ = logger.Sync() }()

	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLoggerFallsBackOnBadLevel(t *testing.T) {
	logger, err := observability.NewLogger(config.LoggerConfig{Level: "shouting"}, "user-management-service")
	require.NoError(t, err)
	defer func() { _ = logger.Sync() }()

	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}
