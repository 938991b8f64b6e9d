package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultCLIConfig().Output.Style, cfg.Output.Style)
	assert.Greater(t, cfg.Workers.Count, 0)
}

func TestLoadEmptyFilenameReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCLIConfig(), cfg)
}

func TestLoadParsesHCLAndFillsMissingDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "holdem-odds.hcl")
	contents := `
workers {
  count = 6
}

output {
  style = "possibilities"
}
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Workers.Count)
	assert.Equal(t, "possibilities", cfg.Output.Style)
	assert.Equal(t, "warn", cfg.Output.LogLevel) // filled from defaults
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.hcl")
	require.NoError(t, os.WriteFile(path, []byte("workers { count = "), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := DefaultCLIConfig()
	cfg.Workers.Count = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultCLIConfig()
	cfg.Output.Style = "chart"
	assert.Error(t, cfg.Validate())

	cfg = DefaultCLIConfig()
	cfg.Output.LogLevel = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = DefaultCLIConfig()
	assert.NoError(t, cfg.Validate())
}
