// Package main is the entry point for the vikey CLI.
package main

import (
	"os"

	"github.com/ndtrung/vikey/cmd/vikey/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
