package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakestoredw/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://fakestoreapi.com", cfg.BaseURL)
	assert.Equal(t, "./data", cfg.OutputDir)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BASE_URL", "http://localhost:9000")
	t.Setenv("OUTPUT_DIR", "/tmp/warehouse")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.BaseURL)
	assert.Equal(t, "/tmp/warehouse", cfg.OutputDir)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.json"),
		[]byte(`{"base-url": "http://stub", "output-dir": "out"}`), 0o644)
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://stub", cfg.BaseURL)
	assert.Equal(t, "out", cfg.OutputDir)
}
