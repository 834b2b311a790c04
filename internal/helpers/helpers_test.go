package helpers_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/prakharpd/portfolio/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	s := helpers.Ptr("v")
	*s = "w"
	assert.Equal(t, "w", *s)
	assert.Equal(t, 3, *helpers.Ptr(3))
}

func TestNewLoggerLevels(t *testing.T) {
	testCases := []struct {
		Name      string
		Verbosity int
		Enabled   slog.Level
		Disabled  slog.Level
	}{
		{Name: "quiet", Verbosity: 0, Enabled: slog.LevelWarn, Disabled: slog.LevelInfo},
		{Name: "info", Verbosity: 1, Enabled: slog.LevelInfo, Disabled: slog.LevelDebug},
		{Name: "debug", Verbosity: 2, Enabled: slog.LevelDebug, Disabled: slog.LevelDebug - 4},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			logger := helpers.NewLogger(tc.Verbosity, false)
			assert.True(t, logger.Enabled(context.Background(), tc.Enabled))
			assert.False(t, logger.Enabled(context.Background(), tc.Disabled))
		})
	}
}

func TestNewNoopLogger(t *testing.T) {
	logger := helpers.NewNoopLogger()
	assert.NotPanics(t, func() { logger.Error("dropped") })
}
