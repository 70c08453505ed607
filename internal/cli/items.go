package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newItemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Item catalog commands",
	}

	cmd.AddCommand(newItemsListCmd())
	cmd.AddCommand(newItemsAddCmd())

	return cmd
}

func newItemsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered item types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ItemTypeList

			if err := client.Get("/api/v1/items", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newItemsAddCmd() *cobra.Command {
	var maxCount int

	cmd := &cobra.Command{
		Use:   "add <id> <name>",
		Short: "Register an item type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 16)
			if err != nil {
				return err
			}

			req := map[string]any{
				"id":        id,
				"name":      args[1],
				"max_count": maxCount,
			}
			var result ItemType

			if err := client.Post("/api/v1/items", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxCount, "max-count", 1, "Stack limit for the item type")

	return cmd
}
