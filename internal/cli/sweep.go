package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adavids/minibrain/internal/sweep"
)

func init() {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Ingest text files from the drop folder",
		Long:  "Scan the input folder for *.txt files, learn each file body under a category named after the file, move the files to processed/, and save.",
		Run:   runSweep,
	}

	RootCmd.AddCommand(cmd)
}

func runSweep(cmd *cobra.Command, args []string) {
	b, cfg, err := openBrain()
	if err != nil {
		exitErr("open brain", err)
	}

	ledger, err := sweep.OpenLedger(cfg.Sweep.LedgerFile)
	if err != nil {
		exitErr("open ledger", err)
	}
	defer ledger.Close()

	sw := sweep.New(cfg.Sweep.InputDir, cfg.Sweep.ProcessedDir, ledger)
	res, err := sw.Run(b)
	if err != nil {
		exitErr("sweep", err)
	}

	commit, err := b.Commit()
	if err != nil {
		exitErr("save brain", err)
	}

	if formatFlag == "json" {
		out, _ := json.Marshal(struct {
			sweep.Result
			Merged int `json:"merged"`
		}{res, commit.Merged})
		fmt.Println(string(out))
		return
	}

	fmt.Printf("learned %d files (%d skipped), merged %d new facts\n", res.Learned, res.Skipped, commit.Merged)
	if commit.LeveledUp {
		fmt.Printf("level up! now level %d\n", commit.Level)
	}
}
