// Package cli implements the minibrain CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/adavids/minibrain/internal/brain"
	"github.com/adavids/minibrain/internal/config"
	"github.com/adavids/minibrain/internal/journal"
	"github.com/adavids/minibrain/internal/store"
)

var (
	configPath string
	dataDir    string
	formatFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "minibrain",
	Short: "A durable personal knowledge store",
	Long:  "minibrain accumulates categorized facts into a JSON brain file with a backup copy, merge-on-save dedup, and a derived experience level.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.minibrain/config.yaml)")
	RootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "Data directory override")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text or json")
}

func setupLogging() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFromPath(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if lvl, perr := zerolog.ParseLevel(cfg.Logging.Level); perr == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	return cfg, nil
}

// openBrain loads config and opens the brain session. Recovery and
// bootstrap are surfaced as warnings, never as failures.
func openBrain() (*brain.Brain, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	s := store.New(cfg.BrainPath(), cfg.BackupPath())
	j := journal.New(cfg.JournalPath())

	b, status, err := brain.Open(s, brain.WithJournal(j))
	if err != nil {
		return nil, nil, err
	}
	switch status {
	case store.RecoveredBackup:
		fmt.Fprintln(os.Stderr, "warning: brain file was corrupted and restored from backup")
	case store.Bootstrapped:
		fmt.Fprintln(os.Stderr, "note: new brain created")
	}
	return b, cfg, nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
