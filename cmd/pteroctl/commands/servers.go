package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zerioak/pteroctl/cmd/pteroctl/handlers"
)

// Servers returns the server administration command group.
func Servers() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "servers",
		Short: "Administer servers on the panel",
	}

	cmd.AddCommand(serversList())
	cmd.AddCommand(serversShow())
	cmd.AddCommand(serversCreate())
	cmd.AddCommand(serversSuspend())
	cmd.AddCommand(serversUnsuspend())
	cmd.AddCommand(serversDelete())
	cmd.AddCommand(serversDatabases())
	cmd.AddCommand(serversEditDetails())
	cmd.AddCommand(serversEditBuild())
	cmd.AddCommand(serversEditStartup())

	return cmd
}

func serversList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all servers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ListServers(cmd.Context())
		},
	}
}

func serversShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one server with its relationships",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.ShowServer(cmd.Context(), id)
		},
	}
}

func serversCreate() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a server through the guided wizard",
		Long: `Walk through the server creation wizard.

The wizard collects name and description, owner, node, egg, Docker
image, port allocation and resource limits, then shows a review
summary before anything is sent to the panel.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.CreateServer(cmd.Context())
		},
	}
}

func serversSuspend() *cobra.Command {
	return &cobra.Command{
		Use:   "suspend <id>",
		Short: "Suspend a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.SuspendServer(cmd.Context(), id)
		},
	}
}

func serversUnsuspend() *cobra.Command {
	return &cobra.Command{
		Use:   "unsuspend <id>",
		Short: "Lift a server suspension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.UnsuspendServer(cmd.Context(), id)
		},
	}
}

func serversDelete() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.DeleteServer(cmd.Context(), id, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Force removal even if the daemon cannot clean up")

	return cmd
}

func serversDatabases() *cobra.Command {
	return &cobra.Command{
		Use:   "databases <id>",
		Short: "List a server's databases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.ServerDatabases(cmd.Context(), id)
		},
	}
}

func serversEditDetails() *cobra.Command {
	var opts handlers.ServerDetailsOptions

	cmd := &cobra.Command{
		Use:   "edit-details <id>",
		Short: "Update a server's name, description, owner or external ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.EditServerDetails(cmd.Context(), id, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "New server name")
	cmd.Flags().StringVar(&opts.Description, "description", "", "New description")
	cmd.Flags().StringVar(&opts.ExternalID, "external-id", "", "New external ID")
	cmd.Flags().Int64Var(&opts.OwnerID, "owner", 0, "New owner user ID")

	return cmd
}

func serversEditBuild() *cobra.Command {
	var opts handlers.ServerBuildOptions

	cmd := &cobra.Command{
		Use:   "edit-build <id>",
		Short: "Update a server's resource limits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.EditServerBuild(cmd.Context(), id, opts)
		},
	}

	cmd.Flags().Int64Var(&opts.Memory, "memory", -1, "Memory limit in MB (0 = unlimited)")
	cmd.Flags().Int64Var(&opts.Disk, "disk", -1, "Disk limit in MB (0 = unlimited)")
	cmd.Flags().Int64Var(&opts.CPU, "cpu", -1, "CPU limit in percent (0 = unlimited)")
	cmd.Flags().Int64Var(&opts.Swap, "swap", -2, "Swap limit in MB (-1 = unlimited)")
	cmd.Flags().Int64Var(&opts.IO, "io", -1, "Block IO weight (10-1000)")

	return cmd
}

func serversEditStartup() *cobra.Command {
	var opts handlers.ServerStartupOptions

	cmd := &cobra.Command{
		Use:   "edit-startup <id>",
		Short: "Update a server's startup command, image or environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.EditServerStartup(cmd.Context(), id, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Startup, "startup", "", "New startup command")
	cmd.Flags().StringVar(&opts.Image, "image", "", "New Docker image")
	cmd.Flags().StringArrayVar(&opts.Env, "env", nil, "Environment override KEY=VALUE (repeatable)")

	return cmd
}

func parseIDArg(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: expected a positive integer", arg)
	}
	return id, nil
}
