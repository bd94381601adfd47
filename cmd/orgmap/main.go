// Package main is the entry point for the orgmap CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/orgmap/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
