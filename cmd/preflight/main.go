// Package main is the entry point for the preflight CLI.
package main

import (
	"os"

	"github.com/thoreinstein/preflight/cmd/preflight/commands"
	"github.com/thoreinstein/preflight/internal/errors"
)

func main() {
	err := commands.Execute()
	if err != nil {
		commands.PrintError(os.Stderr, err)
	}
	os.Exit(errors.ExitCode(err))
}
