package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)

	s, err = LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettingsOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bubble.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[window]
scale = -3

[audio]
volume = 0.8
music = false

[level]
path = "levels/two.json"

[debug]
log_level = "DEBUG"
`), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "Bubble Shooter", s.Window.Title, "untouched keys keep defaults")
	assert.Equal(t, 1.0, s.Window.Scale, "invalid scale falls back to 1")
	assert.True(t, s.Audio.Enabled)
	assert.Equal(t, 0.8, s.Audio.Volume)
	assert.False(t, s.Audio.Music)
	assert.Equal(t, "levels/two.json", s.Level.Path)
	assert.Equal(t, slog.LevelDebug, s.Debug.SlogLevel())
}

func TestLoadSettingsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bubble.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window\nscale = "), 0o644))

	s, err := LoadSettings(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bubble.toml")
	want := DefaultSettings()
	want.Audio.Volume = 0.25
	want.Debug.PprofAddr = "localhost:6060"

	require.NoError(t, SaveSettings(path, want))
	got, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, DebugSettings{LogLevel: "warning"}.SlogLevel())
	assert.Equal(t, slog.LevelError, DebugSettings{LogLevel: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, DebugSettings{LogLevel: "chatty"}.SlogLevel())
}
