// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated
// to handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the pteroctl CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pteroctl",
		Short: "Administer a Pterodactyl-compatible game hosting panel",
	}

	// Resource administration
	cmd.AddCommand(Servers())
	cmd.AddCommand(Nodes())
	cmd.AddCommand(Users())
	cmd.AddCommand(Roles())
	cmd.AddCommand(Nests())
	cmd.AddCommand(Mounts())
	cmd.AddCommand(DatabaseHosts())

	// Live control
	cmd.AddCommand(Manage())

	cmd.AddCommand(Version())

	return cmd
}
