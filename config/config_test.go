package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Verbose)
	require.NotNil(t, cfg.Audit)
	assert.False(t, cfg.Audit.Enabled())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
verbose = true

audit {
  file     = "/var/log/oab-utils/audit.log"
  max_age  = "7d"
  compress = true
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	require.NotNil(t, cfg.Audit)
	assert.Equal(t, "/var/log/oab-utils/audit.log", cfg.Audit.File)
	assert.Equal(t, 7*24*time.Hour, cfg.Audit.GetMaxAge())
	assert.True(t, cfg.Audit.Compress)
}

func TestLoadWithoutAuditBlock(t *testing.T) {
	cfg, err := Load(writeConfig(t, "verbose = false\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg.Audit)
	assert.False(t, cfg.Audit.Enabled())
}

func TestLoadSampleConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, GetSampleConfig()))
	require.NoError(t, err)
	assert.True(t, cfg.Audit.Enabled())
	assert.Equal(t, 10, cfg.Audit.MaxSize)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeConfig(t, "verbose = \n"))
	assert.ErrorContains(t, err, "parsing failed")

	_, err = Load(writeConfig(t, "audit {\n  max_age = \"whenever\"\n}\n"))
	assert.ErrorContains(t, err, "max_age")

	_, err = Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}

func TestConfigLocations(t *testing.T) {
	locs := getConfigLocations()
	assert.Contains(t, locs, "/etc/oab-utils.hcl")
}

func TestLoadWithoutExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"oab-utils.conf", "config"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("verbose = true\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err, name)
		assert.True(t, cfg.Verbose, name)
	}
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"verbose": true}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
}

func TestDecodeName(t *testing.T) {
	tests := map[string]string{
		"/etc/oab-utils.hcl":       "oab-utils.hcl",
		"/etc/oab-utils/conf.json": "conf.json",
		"/etc/oab-utils/conf.HCL":  "conf.HCL",
		"/tmp/oab-utils.conf":      "oab-utils.conf.hcl",
		"/tmp/config":              "config.hcl",
	}
	for in, want := range tests {
		assert.Equal(t, want, decodeName(in), in)
	}
}
