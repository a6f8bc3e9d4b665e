// Package main provides the entry point for the shoreleave CLI tool.
package main

import (
	"github.com/shoreleave/shoreleave/cmd/shoreleave/cmd"
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
