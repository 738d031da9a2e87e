package gizmo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gekko3d/gizmo/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, core.DefaultStyle(), cfg.Style)
	assert.Equal(t, "local", cfg.Space)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfig_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gizmo.yaml")
	data := `
space: world
style:
  axis_length: 3.5
  show_rotate: false
snap:
  translate:
    x: 0.5
  rotate:
    y: 0.25
window:
  title: test
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "world", cfg.Space)
	assert.Equal(t, float32(3.5), cfg.Style.AxisLength)
	assert.False(t, cfg.Style.ShowRotate)
	assert.True(t, cfg.Style.ShowTranslate, "unset keys keep their defaults")
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, "test", cfg.Window.Title)

	x, ok := cfg.Snap.Translate.Get(core.AxisX)
	require.True(t, ok)
	assert.Equal(t, float32(0.5), x)
	_, ok = cfg.Snap.Translate.Get(core.AxisY)
	assert.False(t, ok)
	y, ok := cfg.Snap.Rotate.Get(core.AxisY)
	require.True(t, ok)
	assert.Equal(t, float32(0.25), y)
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("style: [1, 2"), 0644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("space: sideways\n"), 0644))
	_, err = LoadConfig(invalid)
	assert.ErrorIs(t, err, ErrInvalidSpace)
}

func TestConfig_SaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "gizmo.yaml")

	cfg := DefaultConfig()
	cfg.Mode = "rotate"
	cfg.Snap.Scale = core.UniformSnap(0.25)
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"negative style size", func(c *Config) { c.Style.AxisLength = -1 }, core.ErrNegativeSize},
		{"negative snap", func(c *Config) { c.Snap.Rotate = c.Snap.Rotate.With(core.AxisZ, -0.1) }, ErrNegativeSnap},
		{"bad space", func(c *Config) { c.Space = "up" }, ErrInvalidSpace},
		{"bad mode", func(c *Config) { c.Mode = "shear" }, ErrInvalidMode},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, ErrInvalidLogLevel},
		{"zero window", func(c *Config) { c.Window.Height = 0 }, ErrInvalidWindow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestParseSpaceAndMode(t *testing.T) {
	s, err := ParseSpace("World")
	require.NoError(t, err)
	assert.Equal(t, core.SpaceWorld, s)

	m, err := ParseMode("SCALE")
	require.NoError(t, err)
	assert.Equal(t, core.ModeScale, m)
}
