package commands

import (
	"github.com/spf13/cobra"

	"github.com/zerioak/pteroctl/cmd/pteroctl/handlers"
)

// Users returns the user administration command group.
func Users() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Administer panel user accounts",
	}

	cmd.AddCommand(usersList())
	cmd.AddCommand(usersShow())
	cmd.AddCommand(usersCreate())
	cmd.AddCommand(usersUpdate())
	cmd.AddCommand(usersDelete())

	return cmd
}

func usersList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ListUsers(cmd.Context())
		},
	}
}

func usersShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.ShowUser(cmd.Context(), id)
		},
	}
}

func usersCreate() *cobra.Command {
	var opts handlers.UserOptions

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.CreateUser(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&opts.Username, "username", "", "Username (required)")
	cmd.Flags().StringVar(&opts.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&opts.LastName, "last-name", "", "Last name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func usersUpdate() *cobra.Command {
	var opts handlers.UserOptions

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.UpdateUser(cmd.Context(), id, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Email, "email", "", "New email address")
	cmd.Flags().StringVar(&opts.Username, "username", "", "New username")
	cmd.Flags().StringVar(&opts.FirstName, "first-name", "", "New first name")
	cmd.Flags().StringVar(&opts.LastName, "last-name", "", "New last name")

	return cmd
}

func usersDelete() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.DeleteUser(cmd.Context(), id)
		},
	}
}
