// Package config loads minibrain configuration.
//
// Configuration lives in a YAML file (by default beside the data files)
// and every key can be overridden with a MINIBRAIN_* environment
// variable. A missing config file is written out with defaults on first
// load.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all minibrain settings.
type Config struct {
	// DataDir is where the brain, backup, journal, and ledger files live.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`
	// BrainFile is the primary document filename within DataDir.
	BrainFile string `mapstructure:"brain_file" yaml:"brain_file"`
	// BackupFile is the backup copy filename within DataDir.
	BackupFile string `mapstructure:"backup_file" yaml:"backup_file"`
	// JournalFile is the commit journal filename within DataDir.
	JournalFile string `mapstructure:"journal_file" yaml:"journal_file"`

	Sweep   SweepConfig   `mapstructure:"sweep" yaml:"sweep"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// SweepConfig configures the file-ingestion sweep.
type SweepConfig struct {
	// InputDir is the drop folder scanned for *.txt files.
	InputDir string `mapstructure:"input_dir" yaml:"input_dir"`
	// ProcessedDir is where swept files are moved after reading.
	ProcessedDir string `mapstructure:"processed_dir" yaml:"processed_dir"`
	// LedgerFile is the SQLite ledger of already-ingested content.
	LedgerFile string `mapstructure:"ledger_file" yaml:"ledger_file"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level"`
}

// Default returns the default configuration, rooted in the current
// working directory.
func Default() *Config {
	return &Config{
		DataDir:     ".",
		BrainFile:   "mini_brain.json",
		BackupFile:  "mini_brain_backup.json",
		JournalFile: "mini_brain_journal.ndjson",
		Sweep: SweepConfig{
			InputDir:     "mini_files",
			ProcessedDir: filepath.Join("mini_files", "processed"),
			LedgerFile:   filepath.Join("mini_files", "ledger.db"),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// BrainPath returns the full path to the primary brain file.
func (c *Config) BrainPath() string { return filepath.Join(c.DataDir, c.BrainFile) }

// BackupPath returns the full path to the backup file.
func (c *Config) BackupPath() string { return filepath.Join(c.DataDir, c.BackupFile) }

// JournalPath returns the full path to the commit journal.
func (c *Config) JournalPath() string { return filepath.Join(c.DataDir, c.JournalFile) }

// Load reads the config from the default location (~/.minibrain/config.yaml),
// creating it with defaults if missing.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	return LoadFromPath(filepath.Join(home, ".minibrain", "config.yaml"))
}

// LoadFromPath reads the config from an explicit file path, creating the
// file with defaults if missing. Environment variables with the
// MINIBRAIN_ prefix override file values (e.g. MINIBRAIN_DATA_DIR,
// MINIBRAIN_SWEEP_INPUT_DIR).
func LoadFromPath(path string) (*Config, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeConfigFile(path, Default()); err != nil {
			return nil, fmt.Errorf("write default config: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("MINIBRAIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func writeConfigFile(path string, cfg *Config) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	header := "# minibrain configuration\n# Every key can be overridden with a MINIBRAIN_* environment variable.\n"
	return os.WriteFile(path, append([]byte(header), b...), 0o644)
}
