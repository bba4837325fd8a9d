package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "CANVAS_WIDTH", "CANVAS_HEIGHT", "PADDING", "RETURN_TO_START"} {
		t.Setenv(k, "")
	}

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.toml")
	require.NoError(t, os.WriteFile(path, []byte("port = \"9090\"\npadding = 20.0\nreturn_to_start = true\n"), 0o644))

	t.Setenv("PORT", "")
	t.Setenv("PADDING", "")
	t.Setenv("RETURN_TO_START", "")
	t.Setenv("CANVAS_HEIGHT", "")
	t.Setenv("CANVAS_WIDTH", "800")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 20.0, cfg.Padding)
	assert.Equal(t, 800.0, cfg.CanvasWidth)
	assert.Equal(t, 500.0, cfg.CanvasHeight)
	assert.True(t, cfg.ReturnToStart)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("PADDING", "wide")
	_, err := Load("")
	require.Error(t, err)

	t.Setenv("PADDING", "-1")
	_, err = Load("")
	require.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.env")
	require.NoError(t, os.WriteFile(good, []byte("CANVAS_HEIGHT=320\n"), 0o644))
	t.Setenv("CANVAS_HEIGHT", "")
	os.Unsetenv("CANVAS_HEIGHT")

	cfg, err := load("", good)
	require.NoError(t, err)
	assert.Equal(t, 320.0, cfg.CanvasHeight)

	_, err = load("", filepath.Join(dir, "missing.env"))
	require.NoError(t, err)

	bad := filepath.Join(dir, "bad.env")
	require.NoError(t, os.WriteFile(bad, []byte("CANVAS_WIDTH='800\n"), 0o644))
	_, err = load("", bad)
	require.Error(t, err)
}
