// Package main provides the entry point for the leadstream CLI tool.
package main

import (
	"github.com/leadstream/leadstream/cmd/leadstream/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
