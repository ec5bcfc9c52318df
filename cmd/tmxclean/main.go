// Package main is the entry point for the tmxclean CLI.
package main

import (
	"os"

	"github.com/tmxtools/tmxclean/cmd/tmxclean/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
