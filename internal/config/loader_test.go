package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 2025, cfg.Load.TargetYear)
	assert.Equal(t, "ar_carga_sabana.log", cfg.LogFile)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
}

func TestLoadOverridesFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
database:
  host: db.internal
  port: 5433
  dbname: staging
load:
  target_year: 2026
  file: sabana_full.xlsx
log:
  file: carga.log
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 5433, cfg.DB.Port)
	assert.Equal(t, "staging", cfg.DB.DBName)
	assert.Equal(t, 2026, cfg.Load.TargetYear)
	assert.Equal(t, "sabana_full.xlsx", cfg.Load.File)
	assert.Equal(t, "carga.log", cfg.LogFile)
	// Untouched keys keep their defaults.
	assert.Equal(t, "postgres", cfg.DB.User)
}
