// Clear command removes completed items or wipes the list entirely.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	clearCompleted bool
	clearAll       bool
	clearForce     bool
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove completed items, or everything with --all",
	Long: `Clear removes items in bulk.

--completed removes every completed item; the remaining items keep
their order values. --all wipes the entire list and resets ordering.
--all asks for confirmation unless --force is given.`,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&clearCompleted, "completed", false, "remove all completed items")
	clearCmd.Flags().BoolVar(&clearAll, "all", false, "remove every item")
	clearCmd.Flags().BoolVarP(&clearForce, "force", "f", false, "skip the confirmation prompt")
}

func runClear(cmd *cobra.Command, args []string) error {
	switch {
	case clearAll:
		if !clearForce && !confirm("Delete ALL items?") {
			fmt.Println("Aborted")
			return nil
		}
		_, total := checklist.Items.Counts()
		checklist.Items.ClearAll()
		fmt.Printf("Removed %d items\n", total)
		return nil
	case clearCompleted:
		completed, _ := checklist.Items.Counts()
		checklist.Items.ClearCompleted()
		fmt.Printf("Removed %d completed items\n", completed)
		return nil
	default:
		return fmt.Errorf("specify --completed or --all")
	}
}

// confirm prompts on stdin for a yes/no answer; anything but "y"/"yes"
// counts as no.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
