package main

import (
	"fmt"
	"os"

	"github.com/nextellar-labs/create-nextellar-app/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		// Errors are silenced on the command tree so they surface exactly
		// once, here.
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
