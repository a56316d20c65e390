package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/dayfleet/dayfleet/cmd/cli/commands"
)

func main() {
	// Missing .env is fine for the CLI.
	_ = godotenv.Load()

	if err := commands.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
