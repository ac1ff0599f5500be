// Toggle command flips an item between active and completed.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ticklab/ticklist/pkg/types"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <item>",
	Short: "Toggle an item between active and completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runToggle,
}

func runToggle(cmd *cobra.Command, args []string) error {
	item, err := findItem(args[0])
	if err != nil {
		return err
	}

	if err := checklist.Items.Toggle(item.ID); err != nil {
		if errors.Is(err, types.ErrItemArchived) {
			return fmt.Errorf("%s is archived; unarchive it first", truncateID(item.ID))
		}
		return err
	}

	updated, err := checklist.Items.Get(item.ID)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(updated)
	}
	if updated.Completed() {
		fmt.Printf("Completed %s: %s\n", truncateID(updated.ID), updated.Text)
	} else {
		fmt.Printf("Reopened %s: %s\n", truncateID(updated.ID), updated.Text)
	}
	return nil
}
