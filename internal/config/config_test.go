package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/th3oth3rjak3/Sigil/internal/config"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.Load(dir)

	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadParsesOverrides(t *testing.T) {
	dir := t.TempDir()

	body := "diagnostics_cap = 10\ncolor = true\nwatch_debounce_ms = 500\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(body), 0o644))

	cfg, err := config.Load(dir)

	require.NoError(t, err)
	assert.Equal(t, 10, cfg.DiagnosticsCap)
	assert.True(t, cfg.Color)
	assert.Equal(t, 500, cfg.WatchDebounceMs)
}

func TestLoadMalformedFileIsConfigError(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("not = [valid"), 0o644))

	_, err := config.Load(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONFIG")
}

func TestLoadZeroCapFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("diagnostics_cap = 0\ncolor = true\n"), 0o644))

	cfg, err := config.Load(dir)

	require.NoError(t, err)
	assert.Equal(t, config.Default().DiagnosticsCap, cfg.DiagnosticsCap)
}
