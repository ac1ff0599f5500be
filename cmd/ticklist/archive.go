// Archive and unarchive commands move items in and out of the archived
// shelf without touching their checked state.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive <item>",
	Short: "Archive an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchive,
}

var unarchiveCmd = &cobra.Command{
	Use:   "unarchive <item>",
	Short: "Restore an archived item to the active list",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnarchive,
}

func runArchive(cmd *cobra.Command, args []string) error {
	item, err := findItem(args[0])
	if err != nil {
		return err
	}
	checklist.Items.Archive(item.ID)
	if flagJSON {
		updated, err := checklist.Items.Get(item.ID)
		if err != nil {
			return err
		}
		return printJSON(updated)
	}
	fmt.Printf("Archived %s: %s\n", truncateID(item.ID), item.Text)
	return nil
}

func runUnarchive(cmd *cobra.Command, args []string) error {
	item, err := findItem(args[0])
	if err != nil {
		return err
	}
	checklist.Items.Unarchive(item.ID)
	if flagJSON {
		updated, err := checklist.Items.Get(item.ID)
		if err != nil {
			return err
		}
		return printJSON(updated)
	}
	fmt.Printf("Unarchived %s: %s\n", truncateID(item.ID), item.Text)
	return nil
}
