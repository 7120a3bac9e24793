package commands

import (
	"github.com/spf13/cobra"

	"github.com/zerioak/pteroctl/cmd/pteroctl/handlers"
)

// DatabaseHosts returns the database host administration command group.
func DatabaseHosts() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dbhosts",
		Short: "Administer database hosts",
	}

	cmd.AddCommand(dbhostsList())
	cmd.AddCommand(dbhostsCreate())
	cmd.AddCommand(dbhostsUpdate())
	cmd.AddCommand(dbhostsDelete())

	return cmd
}

func dbhostsList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all database hosts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ListDatabaseHosts(cmd.Context())
		},
	}
}

func dbhostsCreate() *cobra.Command {
	var opts handlers.DatabaseHostOptions

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Register a database host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.CreateDatabaseHost(cmd.Context(), args[0], opts)
		},
	}

	dbhostFlags(cmd, &opts)
	_ = cmd.MarkFlagRequired("host")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func dbhostsUpdate() *cobra.Command {
	var opts handlers.DatabaseHostOptions
	var name string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a database host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.UpdateDatabaseHost(cmd.Context(), id, name, opts)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New display name")
	cmd.Flags().StringVar(&opts.Host, "host", "", "New database server address")
	cmd.Flags().Int64Var(&opts.Port, "port", 0, "New database server port")
	cmd.Flags().StringVar(&opts.Username, "username", "", "New privileged account username")
	cmd.Flags().StringVar(&opts.Password, "password", "", "New privileged account password")
	cmd.Flags().Int64Var(&opts.NodeID, "node", 0, "Restrict to a node ID")

	return cmd
}

func dbhostsDelete() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a database host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.DeleteDatabaseHost(cmd.Context(), id)
		},
	}
}

func dbhostFlags(cmd *cobra.Command, opts *handlers.DatabaseHostOptions) {
	cmd.Flags().StringVar(&opts.Host, "host", "", "Database server address")
	cmd.Flags().Int64Var(&opts.Port, "port", 3306, "Database server port")
	cmd.Flags().StringVar(&opts.Username, "username", "", "Privileged account username")
	cmd.Flags().StringVar(&opts.Password, "password", "", "Privileged account password")
	cmd.Flags().Int64Var(&opts.NodeID, "node", 0, "Restrict to a node ID")
}
