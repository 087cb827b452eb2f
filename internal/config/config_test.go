package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/leaveatip/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Leave a Tip", cfg.App.Name)
	assert.Equal(t, 15, cfg.Tip.Minimum)
	assert.Equal(t, []int{15, 20, 25}, cfg.Tip.Presets)
	assert.Equal(t, 400*time.Millisecond, cfg.Shake.Duration)
	assert.Equal(t, 3, cfg.Shake.Travel)
	assert.Equal(t, 3, cfg.Shake.Count)
	assert.True(t, cfg.UI.AltScreen)
	assert.Empty(t, cfg.Log.File)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("TIP_MINIMUM", "18")
	t.Setenv("TIP_PRESETS", "18,22")
	t.Setenv("SHAKE_DURATION", "1s")
	t.Setenv("UI_ALT_SCREEN", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 18, cfg.Tip.Minimum)
	assert.Equal(t, []int{18, 22}, cfg.Tip.Presets)
	assert.Equal(t, time.Second, cfg.Shake.Duration)
	assert.False(t, cfg.UI.AltScreen)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "NotANumber", env: map[string]string{"TIP_MINIMUM": "lots"}},
		{name: "NegativePreset", env: map[string]string{"TIP_PRESETS": "15,-5"}},
		{name: "ZeroDuration", env: map[string]string{"SHAKE_DURATION": "0s"}},
		{name: "ZeroTravel", env: map[string]string{"SHAKE_TRAVEL": "0"}},
		{name: "UnknownLevel", env: map[string]string{"LOG_LEVEL": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
