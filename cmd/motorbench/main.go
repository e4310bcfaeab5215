package main

import (
	"fmt"
	"os"

	"github.com/torqlab/motorbench/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Command output (including formatted errors) has already been
		// written; surface the message for flag-level failures and exit
		// with the mapped code.
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
