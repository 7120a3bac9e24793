package commands

import (
	"github.com/spf13/cobra"

	"github.com/zerioak/pteroctl/cmd/pteroctl/handlers"
)

// Nodes returns the node administration command group.
func Nodes() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nodes",
		Short: "Administer daemon nodes",
	}

	cmd.AddCommand(nodesList())
	cmd.AddCommand(nodesShow())
	cmd.AddCommand(nodesCreate())
	cmd.AddCommand(nodesUpdate())
	cmd.AddCommand(nodesDelete())
	cmd.AddCommand(nodesAllocations())
	cmd.AddCommand(nodesAddAllocations())
	cmd.AddCommand(nodesDeleteAllocation())

	return cmd
}

func nodesCreate() *cobra.Command {
	var opts handlers.NodeOptions

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Register a daemon node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.CreateNode(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().Int64Var(&opts.LocationID, "location", 0, "Location ID (required)")
	cmd.Flags().StringVar(&opts.FQDN, "fqdn", "", "FQDN or IP the panel reaches the daemon at (required)")
	cmd.Flags().StringVar(&opts.Scheme, "scheme", "https", "Connection scheme: https or http")
	cmd.Flags().Int64Var(&opts.Memory, "memory", 0, "Total memory in MB (required)")
	cmd.Flags().Int64Var(&opts.Disk, "disk", 0, "Total disk in MB (required)")
	cmd.Flags().Int64Var(&opts.SftpPort, "sftp-port", 2022, "Daemon SFTP port")
	cmd.Flags().Int64Var(&opts.DaemonPort, "daemon-port", 8080, "Daemon listen port")
	_ = cmd.MarkFlagRequired("location")
	_ = cmd.MarkFlagRequired("fqdn")
	_ = cmd.MarkFlagRequired("memory")
	_ = cmd.MarkFlagRequired("disk")

	return cmd
}

func nodesUpdate() *cobra.Command {
	var opts handlers.NodeOptions

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a daemon node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.UpdateNode(cmd.Context(), id, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "New node name")
	cmd.Flags().StringVar(&opts.FQDN, "fqdn", "", "New FQDN or IP")
	cmd.Flags().StringVar(&opts.Scheme, "scheme", "", "New connection scheme")
	cmd.Flags().Int64Var(&opts.Memory, "memory", 0, "New total memory in MB")
	cmd.Flags().Int64Var(&opts.Disk, "disk", 0, "New total disk in MB")

	return cmd
}

func nodesDelete() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.DeleteNode(cmd.Context(), id)
		},
	}
}

func nodesList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all nodes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ListNodes(cmd.Context())
		},
	}
}

func nodesShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.ShowNode(cmd.Context(), id)
		},
	}
}

func nodesAllocations() *cobra.Command {
	var freeOnly bool

	cmd := &cobra.Command{
		Use:   "allocations <node-id>",
		Short: "List a node's port allocations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.NodeAllocations(cmd.Context(), id, freeOnly)
		},
	}

	cmd.Flags().BoolVar(&freeOnly, "free", false, "Show only unassigned allocations")

	return cmd
}

func nodesAddAllocations() *cobra.Command {
	var ip string
	var ports []string

	cmd := &cobra.Command{
		Use:   "add-allocations <node-id>",
		Short: "Add port allocations to a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.AddAllocations(cmd.Context(), id, ip, ports)
		},
	}

	cmd.Flags().StringVar(&ip, "ip", "", "IP address to bind (required)")
	cmd.Flags().StringArrayVar(&ports, "port", nil, "Port or port range, e.g. 25565 or 25565-25570 (repeatable)")
	_ = cmd.MarkFlagRequired("ip")
	_ = cmd.MarkFlagRequired("port")

	return cmd
}

func nodesDeleteAllocation() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-allocation <node-id> <allocation-id>",
		Short: "Delete an unassigned allocation from a node",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodeID, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			allocID, err := parseIDArg(args[1])
			if err != nil {
				return err
			}
			return handlers.DeleteAllocation(cmd.Context(), nodeID, allocID)
		},
	}
}
