package main

import (
	"os"

	"flatten/cmd"
)

func main() {
	// Errors are reported by the command layer; the process only needs the
	// exit status here.
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
