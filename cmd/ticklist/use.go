// Use command persists the category filter applied by default to "list".
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var useClear bool

var useCmd = &cobra.Command{
	Use:   "use [category]",
	Short: "Set the category filter remembered between runs",
	Long: `Use persists a category filter. Subsequent "ticklist list" runs
show only that category until the filter is cleared with --clear.

Example:
  ticklist use Work
  ticklist use --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUse,
}

func init() {
	useCmd.Flags().BoolVar(&useClear, "clear", false, "clear the persisted category filter")
}

func runUse(cmd *cobra.Command, args []string) error {
	if useClear {
		if err := checklist.SetSelectedCategory(""); err != nil {
			return fmt.Errorf("clear category filter: %w", err)
		}
		fmt.Println("Category filter cleared")
		return nil
	}

	if len(args) == 0 {
		id := checklist.SelectedCategory()
		if id == "" {
			fmt.Println("No category filter set")
			return nil
		}
		cat := checklist.Categories.Resolve(id)
		fmt.Printf("Filtering by %s\n", cat.Name)
		return nil
	}

	cat, err := findCategory(args[0])
	if err != nil {
		return err
	}
	if err := checklist.SetSelectedCategory(cat.ID); err != nil {
		return fmt.Errorf("set category filter: %w", err)
	}
	fmt.Printf("Filtering by %s\n", cat.Name)
	return nil
}
