package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adavids/minibrain/internal/journal"
)

func init() {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show the commit journal",
		Long:  "List past commit cycles: how many facts merged and the resulting level and points.",
		Run:   runJournal,
	}

	RootCmd.AddCommand(cmd)
}

func runJournal(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitErr("load config", err)
	}

	entries, err := journal.New(cfg.JournalPath()).Entries()
	if err != nil {
		exitErr("read journal", err)
	}

	if formatFlag == "json" {
		if len(entries) == 0 {
			fmt.Println("[]")
			return
		}
		out, _ := json.MarshalIndent(entries, "", "  ")
		fmt.Println(string(out))
		return
	}

	if len(entries) == 0 {
		fmt.Println("no commits recorded")
		return
	}
	for _, e := range entries {
		fmt.Printf("%s  +%d facts  level %d  %d xp\n", e.Timestamp, e.Merged, e.Level, e.IntelligencePoints)
	}
}
