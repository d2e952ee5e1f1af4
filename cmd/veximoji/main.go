// Package main is the entry point for the veximoji CLI.
package main

import (
	"fmt"
	"os"

	"github.com/roz0n/Veximoji/internal/cli"
)

// Build information injected via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date))
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
