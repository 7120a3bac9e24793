package commands

import (
	"github.com/spf13/cobra"

	"github.com/zerioak/pteroctl/cmd/pteroctl/handlers"
)

// Manage returns the live server management command.
func Manage() *cobra.Command {
	var mode string
	var action string

	cmd := &cobra.Command{
		Use:   "manage <server-id>",
		Short: "Manage a running server through the Client API",
		Long: `Open the live management panel for one server.

The panel polls resource usage and accepts power signals and a
reinstall action. By default the credential mode from the config is
used: owner mode authenticates with a client key, admin mode reuses
the application key with an ownership bypass.

With --action the named action is sent once without opening the
panel, which also works in non-interactive sessions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			if action != "" {
				return handlers.ManageAction(cmd.Context(), id, mode, action)
			}
			return handlers.Manage(cmd.Context(), id, mode)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Credential mode: owner or admin (default from config)")
	cmd.Flags().StringVar(&action, "action", "", "One-shot action: start, stop, restart, kill, reinstall or stats")

	return cmd
}
