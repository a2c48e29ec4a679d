package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromPathWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.FileExists(t, path, "a missing config file is created with defaults")
}

func TestLoadFromPathReadsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
data_dir: /srv/brain
brain_file: brain.json
sweep:
  input_dir: /srv/drop
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/brain", cfg.DataDir)
	assert.Equal(t, "brain.json", cfg.BrainFile)
	assert.Equal(t, "/srv/drop", cfg.Sweep.InputDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, Default().BackupFile, cfg.BackupFile, "missing keys keep defaults")
}

func TestEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("MINIBRAIN_DATA_DIR", "/env/brain")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "/env/brain", cfg.DataDir)
}

func TestPathHelpers(t *testing.T) {
	cfg := Default()
	cfg.DataDir = "/data"

	assert.Equal(t, filepath.Join("/data", "mini_brain.json"), cfg.BrainPath())
	assert.Equal(t, filepath.Join("/data", "mini_brain_backup.json"), cfg.BackupPath())
	assert.Equal(t, filepath.Join("/data", "mini_brain_journal.ndjson"), cfg.JournalPath())
}
