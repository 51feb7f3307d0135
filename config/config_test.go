package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottkirkwood/fractals/style"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Fractals", cfg.Name)
	assert.Equal(t, Light, cfg.Theme)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.Equal(t, 900, cfg.Width)
	assert.False(t, cfg.Strict)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FRACTALS_NAME", "Gen")
	t.Setenv("FRACTALS_LOG_LEVEL", "debug")
	t.Setenv("FRACTALS_THEME", "DARK")
	t.Setenv("FRACTALS_STRICT", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Gen", cfg.Name)
	assert.Equal(t, Dark, cfg.Theme)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.True(t, cfg.Strict)

	bg, fg := cfg.Colors()
	assert.Equal(t, style.White, fg)
	assert.NotEqual(t, style.White, bg)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"FRACTALS_THEME", "purple"},
		{"FRACTALS_LOG_LEVEL", "loud"},
		{"FRACTALS_WIDTH", "0"},
		{"FRACTALS_HEIGHT", "tall"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fractals.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "name: Ferns\ntheme: dark\nwidth: 320\nstrict: true\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Ferns", cfg.Name)
	assert.Equal(t, Dark, cfg.Theme)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 550, cfg.Height, "default kept")
	assert.True(t, cfg.Strict)
}

func TestLoadFileEnvWins(t *testing.T) {
	path := writeConfig(t, "name: Ferns\nwidth: 320\n")
	t.Setenv("FRACTALS_NAME", "Env")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Env", cfg.Name)
	assert.Equal(t, 320, cfg.Width)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadFile(writeConfig(t, "width: [1, 2"))
	assert.Error(t, err)

	_, err = LoadFile(writeConfig(t, "theme: sepia\n"))
	assert.Error(t, err)

	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, "Fractals", cfg.Name)
}
