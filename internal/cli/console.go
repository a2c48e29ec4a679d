package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adavids/minibrain/internal/brain"
	"github.com/adavids/minibrain/internal/config"
	"github.com/adavids/minibrain/internal/sweep"
)

func init() {
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Interactive session",
		Long:  "A prompt loop over one brain session: type facts, sweep files, recall, and save on demand. Facts stay staged in memory until saved.",
		Run:   runConsole,
	}

	RootCmd.AddCommand(cmd)
}

func runConsole(cmd *cobra.Command, args []string) {
	b, cfg, err := openBrain()
	if err != nil {
		exitErr("open brain", err)
	}

	fmt.Println(renderStatus(b.Stats()))
	fmt.Println("commands: learn | sweep | recall | save | status | quit")

	in := bufio.NewScanner(os.Stdin)
	for {
		stats := b.Stats()
		prompt := fmt.Sprintf("%s (%d)", stats.Owner, stats.Level)
		if stats.Pending > 0 {
			prompt += fmt.Sprintf(" [%d pending]", stats.Pending)
		}
		fmt.Print(promptStyle.Render(prompt + " > "))

		if !in.Scan() {
			saveSession(b)
			return
		}

		switch strings.ToLower(strings.TrimSpace(in.Text())) {
		case "learn", "l", "t":
			consoleLearn(b, in)
		case "sweep", "f":
			consoleSweep(b, cfg)
		case "recall", "r":
			consoleRecall(b, in)
		case "save", "s":
			saveSession(b)
		case "status":
			fmt.Println(renderStatus(b.Stats()))
		case "quit", "q", "exit":
			saveSession(b)
			fmt.Println("bye")
			return
		case "":
		default:
			fmt.Println("unknown command")
		}
	}
}

func consoleLearn(b *brain.Brain, in *bufio.Scanner) {
	category := promptLine(in, "topic: ")
	content := promptLine(in, "data:  ")
	if category == "" || content == "" {
		fmt.Println("empty input, nothing staged")
		return
	}
	b.Learn(category, content)
	fmt.Println("staged; type save to commit")
}

func consoleRecall(b *brain.Brain, in *bufio.Scanner) {
	query := promptLine(in, "search: ")
	matches := b.Recall(query)
	if len(matches) == 0 {
		fmt.Println("nothing found")
		return
	}
	for _, m := range matches {
		fmt.Printf("%s %s\n", categoryStyle.Render("["+m.Category+"]"), m.Fact.Data)
	}
}

func consoleSweep(b *brain.Brain, cfg *config.Config) {
	ledger, err := sweep.OpenLedger(cfg.Sweep.LedgerFile)
	if err != nil {
		fmt.Println("sweep failed:", err)
		return
	}
	defer ledger.Close()

	res, err := sweep.New(cfg.Sweep.InputDir, cfg.Sweep.ProcessedDir, ledger).Run(b)
	if err != nil {
		fmt.Println("sweep failed:", err)
		return
	}
	if res.Learned == 0 {
		fmt.Println("no new files found")
		return
	}
	fmt.Printf("learned %d files; type save to commit\n", res.Learned)
}

func saveSession(b *brain.Brain) {
	res, err := b.Commit()
	if err != nil {
		fmt.Println("save failed:", err)
		return
	}
	switch {
	case res.Merged == 0:
		fmt.Println("nothing new to save")
	case res.LeveledUp:
		fmt.Printf("saved %d facts — level up! now level %d\n", res.Merged, res.Level)
	default:
		fmt.Printf("saved %d facts\n", res.Merged)
	}
}

func promptLine(in *bufio.Scanner, label string) string {
	fmt.Print(labelStyle.Render(label))
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}
