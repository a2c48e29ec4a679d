package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "learn [content]",
		Short: "Learn a fact and save it",
		Long:  "Stage a fact under a category and commit it immediately. Content can be a positional arg or piped via stdin.",
		Run:   runLearn,
	}

	cmd.Flags().StringP("category", "c", "", "Category (required)")
	cmd.MarkFlagRequired("category")

	RootCmd.AddCommand(cmd)
}

func runLearn(cmd *cobra.Command, args []string) {
	category, _ := cmd.Flags().GetString("category")
	category = strings.TrimSpace(category)

	var content string
	if len(args) > 0 {
		content = strings.Join(args, " ")
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				exitErr("read stdin", err)
			}
			content = string(b)
		}
	}
	content = strings.TrimSpace(content)

	if category == "" || content == "" {
		exitErr("learn", fmt.Errorf("category and content are required"))
	}

	b, _, err := openBrain()
	if err != nil {
		exitErr("open brain", err)
	}

	b.Learn(category, content)
	res, err := b.Commit()
	if err != nil {
		exitErr("save brain", err)
	}

	if formatFlag == "json" {
		out, _ := json.Marshal(res)
		fmt.Println(string(out))
		return
	}
	if res.Merged > 0 {
		fmt.Printf("remembered under [%s]\n", category)
	} else {
		fmt.Printf("already known under [%s]\n", category)
	}
}
