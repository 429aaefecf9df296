package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cdinventory/internal/inventory"
	"cdinventory/internal/logging"
	"cdinventory/internal/storage"
)

type listOutput struct {
	Location string              `json:"location"`
	Found    bool                `json:"found"`
	Records  inventory.Inventory `json:"records"`
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the stored inventory without starting the menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withGateway(logging.NewNop(), func(gw storage.Gateway) error {
				inv, err := gw.Load(cmd.Context())
				found := true
				if errors.Is(err, storage.ErrNotFound) {
					found = false
					inv = inventory.Inventory{}
				} else if err != nil {
					return fmt.Errorf("load inventory: %w", err)
				}

				if jsonOutput {
					return writeJSON(cmd, listOutput{Location: gw.Location(), Found: found, Records: inv})
				}

				out := cmd.OutOrStdout()
				if !found {
					fmt.Fprintf(out, "No inventory stored at %s\n", gw.Location())
					return nil
				}
				if inv.Len() == 0 {
					fmt.Fprintln(out, "Inventory is empty")
					return nil
				}
				fmt.Fprintln(out, renderInventoryTable(inv))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
