package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDeliverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deliver <name> <item-id>",
		Short: "Create an item and put it in a player's inbox",
		Long: `Create a new item of the given type and deliver it to the player's inbox.

Online players receive the item immediately. Offline players are loaded,
given the item and saved.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := strconv.ParseUint(args[1], 10, 16)
			if err != nil {
				return fmt.Errorf("invalid item id %q: must be 0-65535", args[1])
			}

			req := map[string]uint64{"item_id": itemID}
			var result Delivery

			if err := client.Post(PlayerPath(args[0], "inbox"), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}
