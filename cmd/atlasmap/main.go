// Package main provides the entry point for the atlasmap CLI tool.
package main

import "github.com/cartomesh/atlasmap/cmd/atlasmap/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
