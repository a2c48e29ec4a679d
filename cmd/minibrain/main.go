package main

import (
	"os"

	"github.com/adavids/minibrain/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
