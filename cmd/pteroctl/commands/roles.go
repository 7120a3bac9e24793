package commands

import (
	"github.com/spf13/cobra"

	"github.com/zerioak/pteroctl/cmd/pteroctl/handlers"
)

// Roles returns the role administration command group.
func Roles() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Administer admin roles",
	}

	cmd.AddCommand(rolesList())
	cmd.AddCommand(rolesCreate())
	cmd.AddCommand(rolesRename())
	cmd.AddCommand(rolesDelete())

	return cmd
}

func rolesList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all roles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ListRoles(cmd.Context())
		},
	}
}

func rolesCreate() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.CreateRole(cmd.Context(), args[0], description)
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Role description")

	return cmd
}

func rolesRename() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.RenameRole(cmd.Context(), id, args[1])
		},
	}
}

func rolesDelete() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.DeleteRole(cmd.Context(), id)
		},
	}
}
