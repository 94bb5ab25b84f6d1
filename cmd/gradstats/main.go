package main

import (
	"os"

	"github.com/katalvlaran/gradstats/cmd/gradstats/cmd"
)

func main() {
	cmd.ConfigureLogging()
	if err := cmd.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
