// Package main is the entry point for the pteroctl CLI.
//
// pteroctl is a terminal admin console for Pterodactyl-compatible game
// hosting panels. It talks to the panel's Application API for resource
// administration and to the Client API for live server control, and
// wraps server creation in a guided wizard.
//
// Commands: servers, nodes, users, roles, nests, mounts, dbhosts,
// manage, version.
//
// For detailed usage information, run:
//
//	pteroctl --help
package main

import (
	"fmt"
	"os"

	"github.com/zerioak/pteroctl/cmd/pteroctl/commands"
	"github.com/zerioak/pteroctl/internal/logger"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	err := commands.Root().Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
