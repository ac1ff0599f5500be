// Edit command updates the fields of an existing item.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ticklab/ticklist/pkg/types"
)

var (
	editText     string
	editNotes    string
	editPriority string
	editDue      string
	editClearDue bool
	editCategory string
)

var editCmd = &cobra.Command{
	Use:   "edit <item>",
	Short: "Edit an item's text, notes, priority, due date, or category",
	Long: `Edit updates the given fields of an item; fields not named keep
their current value.

Example:
  ticklist edit a1b2c3d4 --text "Buy oat milk"
  ticklist edit a1b2c3d4 --priority high --due 2026-09-15
  ticklist edit a1b2c3d4 --clear-due`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editText, "text", "", "replace the item text")
	editCmd.Flags().StringVar(&editNotes, "notes", "", "replace the item notes")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "priority: none, low, medium, high")
	editCmd.Flags().StringVar(&editDue, "due", "", "due date (YYYY-MM-DD or RFC 3339)")
	editCmd.Flags().BoolVar(&editClearDue, "clear-due", false, "remove the due date")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "move to category (name or ID)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	item, err := findItem(args[0])
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("text") {
		item.Text = editText
	}
	if cmd.Flags().Changed("notes") {
		item.Notes = editNotes
	}
	if cmd.Flags().Changed("priority") {
		p, err := types.ParsePriority(editPriority)
		if err != nil {
			return fmt.Errorf("invalid priority %q", editPriority)
		}
		item.Priority = p
	}
	if editClearDue {
		item.DueDate = nil
	} else if cmd.Flags().Changed("due") {
		due, err := parseDue(editDue)
		if err != nil {
			return err
		}
		item.DueDate = due
	}
	if cmd.Flags().Changed("category") {
		cat, err := findCategory(editCategory)
		if err != nil {
			return err
		}
		item.CategoryID = cat.ID
	}

	if err := checklist.Items.Update(item); err != nil {
		return err
	}

	if flagJSON {
		return printJSON(item)
	}
	fmt.Printf("Updated %s: %s\n", truncateID(item.ID), item.Text)
	return nil
}
