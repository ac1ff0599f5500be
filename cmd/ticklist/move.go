// Move command reorders items within the manual ordering.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var moveRenumber bool

var moveCmd = &cobra.Command{
	Use:   "move <item> <position>",
	Short: "Move an item to a new position",
	Long: `Move places the item at the given 1-based position in the manual
ordering. After a move, order values are renumbered to a dense 0..n-1
sequence.

With --renumber and no arguments, only the renumbering runs, closing
any gaps left by deletions.

Example:
  ticklist move a1b2c3d4 1
  ticklist move --renumber`,
	Args: func(cmd *cobra.Command, args []string) error {
		if moveRenumber && len(args) == 0 {
			return nil
		}
		return cobra.ExactArgs(2)(cmd, args)
	},
	RunE: runMove,
}

func init() {
	moveCmd.Flags().BoolVar(&moveRenumber, "renumber", false, "renumber order values without moving anything")
}

func runMove(cmd *cobra.Command, args []string) error {
	if moveRenumber && len(args) == 0 {
		checklist.Items.Renumber()
		if !flagJSON {
			fmt.Println("Renumbered")
		}
		return nil
	}

	item, err := findItem(args[0])
	if err != nil {
		return err
	}
	pos, err := strconv.Atoi(args[1])
	if err != nil || pos < 1 {
		return fmt.Errorf("invalid position %q", args[1])
	}

	items := checklist.Items.Items()
	from := -1
	for i, it := range items {
		if it.ID == item.ID {
			from = i
			break
		}
	}
	if from < 0 {
		return fmt.Errorf("no item matches %q", args[0])
	}

	dest := pos - 1
	if dest >= len(items) {
		dest = len(items) - 1
	}
	to := dest
	if dest > from {
		to = dest + 1
	}
	checklist.Items.Reorder([]int{from}, to)

	if flagJSON {
		return printJSON(checklist.Items.Items())
	}
	fmt.Printf("Moved %s to position %d\n", truncateID(item.ID), dest+1)
	return nil
}
