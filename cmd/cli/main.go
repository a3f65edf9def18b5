// Package main is the entry point for the archcost CLI.
package main

import (
	"os"

	"archcost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
