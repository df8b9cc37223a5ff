package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spurline/railparts/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.OutDir)
	assert.Equal(t, 300, cfg.Cells)
	assert.Equal(t, []string{"stl"}, cfg.Formats)
	assert.Empty(t, cfg.Families)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogJSON)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
out_dir: /tmp/meshes
cells: 128
formats: [stl, 3mf]
families: [cableclip]
log_level: debug
log_json: true
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/meshes", cfg.OutDir)
	assert.Equal(t, 128, cfg.Cells)
	assert.Equal(t, []string{"stl", "3mf"}, cfg.Formats)
	assert.Equal(t, []string{"cableclip"}, cfg.Families)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("RAILPARTS_LOG_LEVEL", "warn")
	t.Setenv("RAILPARTS_OUT_DIR", "elsewhere")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "elsewhere", cfg.OutDir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsBadValues(t *testing.T) {
	write := func(body string) string {
		path := filepath.Join(t.TempDir(), "partgen.yaml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		return path
	}

	_, err := config.Load(write("cells: 2"))
	assert.ErrorContains(t, err, "cells")

	_, err = config.Load(write("formats: [obj]"))
	assert.ErrorContains(t, err, "obj")

	_, err = config.Load(write("log_level: loud"))
	assert.ErrorContains(t, err, "loud")
}
