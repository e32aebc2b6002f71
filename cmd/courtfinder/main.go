package main

import (
	"os"

	"github.com/gcbaptista/court-finder/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
