package learn

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/oliverbestmann/learnwebgpu/lessons"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}.WithDefaults()

	assert.Equal(t, 640, opts.WindowWidth)
	assert.Equal(t, 480, opts.WindowHeight)
	assert.Equal(t, "Learn WebGPU", opts.WindowTitle)
	assert.Equal(t, "triangle", opts.Lesson)
	assert.Equal(t, "fifo", opts.PresentMode)
	assert.Equal(t, "info", opts.LogLevel)
	assert.False(t, opts.Resizable)

	require.NoError(t, opts.Validate())
}

func TestOptionsKeepValues(t *testing.T) {
	opts := Options{WindowWidth: 800, Lesson: "uniforms"}.WithDefaults()

	assert.Equal(t, 800, opts.WindowWidth)
	assert.Equal(t, 480, opts.WindowHeight)
	assert.Equal(t, "uniforms", opts.Lesson)
}

func TestOptionsValidate(t *testing.T) {
	opts := Options{Lesson: "textures"}.WithDefaults()
	assert.ErrorIs(t, opts.Validate(), lessons.ErrUnknownLesson)

	opts = Options{PresentMode: "vsync"}.WithDefaults()
	assert.Error(t, opts.Validate())

	opts = Options{LogLevel: "loud"}.WithDefaults()
	assert.Error(t, opts.Validate())

	opts = Options{WindowWidth: -1}.WithDefaults()
	assert.Error(t, opts.Validate())
}

func TestOptionsSlogLevel(t *testing.T) {
	level, err := Options{LogLevel: "debug"}.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = Options{LogLevel: "WARN"}.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "learnwebgpu.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadOptions(t *testing.T) {
	path := writeConfig(t, `
window_width = 1024
lesson = "index-buffer"
present_mode = "mailbox"
resizable = true
`)

	opts, err := LoadOptions(path)
	require.NoError(t, err)

	assert.Equal(t, 1024, opts.WindowWidth)
	assert.Equal(t, 480, opts.WindowHeight)
	assert.Equal(t, "index-buffer", opts.Lesson)
	assert.Equal(t, "mailbox", opts.PresentMode)
	assert.True(t, opts.Resizable)
	require.NoError(t, opts.Validate())
}

func TestLoadOptionsUnknownKey(t *testing.T) {
	path := writeConfig(t, `window_widht = 1024`)

	_, err := LoadOptions(path)
	assert.Error(t, err)
}

func TestLoadOptionsMissingFile(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
