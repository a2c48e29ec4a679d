package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adavids/minibrain/internal/brain"
)

func init() {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show brain status",
		Run:   runStatus,
	}

	RootCmd.AddCommand(cmd)
}

func runStatus(cmd *cobra.Command, args []string) {
	b, _, err := openBrain()
	if err != nil {
		exitErr("open brain", err)
	}

	stats := b.Stats()

	if formatFlag == "json" {
		out, _ := json.MarshalIndent(stats, "", "  ")
		fmt.Println(string(out))
		return
	}

	fmt.Println(renderStatus(stats))
}

func renderStatus(s brain.Stats) string {
	body := fmt.Sprintf("%s\n%s %s\n%s %d  %s %d\n%s %d categories, %d facts",
		titleStyle.Render("MINIBRAIN ONLINE"),
		labelStyle.Render("owner:"), s.Owner,
		labelStyle.Render("level:"), s.Level,
		labelStyle.Render("xp:"), s.Points,
		labelStyle.Render("memory:"), s.Categories, s.Facts)
	if s.Pending > 0 {
		body += fmt.Sprintf("\n%s %d", labelStyle.Render("pending:"), s.Pending)
	}
	return panelStyle.Render(body)
}
