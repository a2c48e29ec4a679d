package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "recall [query]",
		Short: "Search long-term memory",
		Long:  "Case-insensitive substring search across category names and fact content.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runRecall,
	}

	RootCmd.AddCommand(cmd)
}

func runRecall(cmd *cobra.Command, args []string) {
	query := strings.Join(args, " ")

	b, _, err := openBrain()
	if err != nil {
		exitErr("open brain", err)
	}

	matches := b.Recall(query)

	if formatFlag == "json" {
		if len(matches) == 0 {
			fmt.Println("[]")
			return
		}
		out, _ := json.MarshalIndent(matches, "", "  ")
		fmt.Println(string(out))
		return
	}

	if len(matches) == 0 {
		fmt.Println("nothing found")
		return
	}
	for _, m := range matches {
		fmt.Printf("%s %s\n", categoryStyle.Render("["+m.Category+"]"), m.Fact.Data)
	}
}
