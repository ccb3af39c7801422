// Package main provides the entry point for the bedrockauth CLI tool.
package main

import "github.com/agentstation/bedrockauth/cmd/bedrockauth/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
