package gizmo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for level, want := range map[string]string{
		"debug": "debug",
		"warn":  "warn",
		"error": "error",
		"info":  "info",
		"":      "info",
		"bogus": "info",
	} {
		assert.Equal(t, want, parseLevel(level).String(), "level %q", level)
	}
}

func TestZapLogger_SetDebug(t *testing.T) {
	l := NewLogger("", "info", LogFileConfig{}, false)
	assert.False(t, l.DebugEnabled())

	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())

	l.SetDebug(false)
	assert.False(t, l.DebugEnabled())
}

func TestZapLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gizmo.log")
	cfg := DefaultLogFileConfig(path)
	cfg.Compress = false

	l := NewLogger("test", "warn", cfg, false)
	l.Infof("hidden %d", 1)
	l.Warnf("drag %s", "visible")
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "drag visible")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "test")
	assert.False(t, strings.Contains(out, "hidden"), "info is below the configured level")
}

func TestLoggingModule_InstallsLogger(t *testing.T) {
	app := NewAppBuilder().
		UseModule(LoggingModule{Level: "debug", Quiet: true}).
		Build()

	l := app.Logger()
	_, isZap := l.(*ZapLogger)
	assert.True(t, isZap)
	assert.True(t, l.DebugEnabled())
}

func TestApp_LoggerDefaultsToNop(t *testing.T) {
	app := NewAppBuilder().Build()

	l := app.Logger()
	require.NotNil(t, l)
	assert.False(t, l.DebugEnabled())
	assert.NoError(t, l.Sync())

	var nilApp *App
	assert.NotNil(t, nilApp.Logger())
}
