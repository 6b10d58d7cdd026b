// Package main is the entry point for the cuneify CLI.
package main

import (
	"os"

	"github.com/f3rmion/cuneify/cmd/cuneify/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
