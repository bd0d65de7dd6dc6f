package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseFlags(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	parseFlags(cfg, []string{"-d", "postgres://other/db", "-l", "debug"})

	assert.Equal(t, "postgres://other/db", cfg.DatabaseDSN)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseFlags_IgnoresForeignFlags(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	def := cfg.DatabaseDSN

	parseFlags(cfg, []string{"-c", "conf.json", "-unknown", "x"})

	assert.Equal(t, def, cfg.DatabaseDSN)
}

func TestParseJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_dsn":"postgres://json/db","log_level":"warn"}`), 0o600))

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg, []string{"-c", path})

	assert.Equal(t, "postgres://json/db", cfg.DatabaseDSN)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParseJSON_EmptyFieldKeepsDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"log_level":"error"}`), 0o600))

	cfg := &Config{}
	cfg.LoadDefaults()
	def := cfg.DatabaseDSN
	parseJSON(cfg, []string{"-config", path})

	assert.Equal(t, def, cfg.DatabaseDSN)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestParseJSON_NoFlagLoadsNothing(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	before := *cfg

	parseJSON(cfg, nil)

	assert.Equal(t, before, *cfg)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://env/db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "postgres://env/db", cfg.DatabaseDSN)
	assert.Equal(t, "debug", cfg.LogLevel)
}
