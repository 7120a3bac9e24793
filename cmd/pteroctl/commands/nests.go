package commands

import (
	"github.com/spf13/cobra"

	"github.com/zerioak/pteroctl/cmd/pteroctl/handlers"
)

// Nests returns the nest and egg inspection command group.
func Nests() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nests",
		Short: "Inspect nests and their eggs",
	}

	cmd.AddCommand(nestsList())
	cmd.AddCommand(nestsEggs())
	cmd.AddCommand(nestsEgg())

	return cmd
}

func nestsList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all nests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ListNests(cmd.Context())
		},
	}
}

func nestsEggs() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "eggs [nest-id]",
		Short: "List eggs of a nest, or every egg on the panel",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || all {
				return handlers.ListAllEggs(cmd.Context())
			}
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return handlers.ListEggs(cmd.Context(), id)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List eggs across every nest")

	return cmd
}

func nestsEgg() *cobra.Command {
	return &cobra.Command{
		Use:   "egg <nest-id> <egg-id>",
		Short: "Show one egg with its variables",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nestID, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			eggID, err := parseIDArg(args[1])
			if err != nil {
				return err
			}
			return handlers.ShowEgg(cmd.Context(), nestID, eggID)
		},
	}
}
