// Delete command removes items permanently.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <item>...",
	Aliases: []string{"rm"},
	Short:   "Delete one or more items",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	for _, ref := range args {
		item, err := findItem(ref)
		if err != nil {
			return err
		}
		checklist.Items.Delete(item.ID)
		if !flagJSON {
			fmt.Printf("Deleted %s: %s\n", truncateID(item.ID), item.Text)
		}
	}
	if flagJSON {
		return printJSON(map[string]int{"deleted": len(args)})
	}
	return nil
}
