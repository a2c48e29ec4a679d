package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the brain document as JSON",
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	b, _, err := openBrain()
	if err != nil {
		exitErr("open brain", err)
	}

	out, _ := json.MarshalIndent(b.Document(), "", "  ")
	fmt.Println(string(out))
}
