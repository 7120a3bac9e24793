package commands

import (
	"github.com/spf13/cobra"

	"github.com/zerioak/pteroctl/cmd/pteroctl/handlers"
)

// Mounts returns the mount administration command group.
func Mounts() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mounts",
		Short: "Administer filesystem mounts",
	}

	cmd.AddCommand(mountsList())
	cmd.AddCommand(mountsShow())
	cmd.AddCommand(mountsCreate())
	cmd.AddCommand(mountsUpdate())
	cmd.AddCommand(mountsDelete())

	return cmd
}

func mountsList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all mounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ListMounts(cmd.Context())
		},
	}
}

func mountsShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one mount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.ShowMount(cmd.Context(), id)
		},
	}
}

func mountsCreate() *cobra.Command {
	var opts handlers.MountOptions

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a mount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.CreateMount(cmd.Context(), args[0], opts)
		},
	}

	mountFlags(cmd, &opts)
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func mountsUpdate() *cobra.Command {
	var opts handlers.MountOptions
	var name string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a mount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.UpdateMount(cmd.Context(), id, name, opts)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New mount name")
	mountFlags(cmd, &opts)

	return cmd
}

func mountsDelete() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a mount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.DeleteMount(cmd.Context(), id)
		},
	}
}

func mountFlags(cmd *cobra.Command, opts *handlers.MountOptions) {
	cmd.Flags().StringVar(&opts.Source, "source", "", "Host path to mount")
	cmd.Flags().StringVar(&opts.Target, "target", "", "Container path to mount at")
	cmd.Flags().BoolVar(&opts.ReadOnly, "read-only", false, "Mount read-only")
	cmd.Flags().BoolVar(&opts.UserMountable, "user-mountable", false, "Let server owners attach the mount")
}
