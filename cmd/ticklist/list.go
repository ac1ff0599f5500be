// List command renders the filtered, sorted projection of the checklist.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ticklab/ticklist/internal/query"
	"github.com/ticklab/ticklist/internal/theme"
	"github.com/ticklab/ticklist/pkg/types"
)

var (
	listCategory string
	listStatus   string
	listSearch   string
	listSort     string
	listAllCats  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List checklist items",
	Long: `List shows the checklist filtered and sorted by the given view state.

When --category is not given, the category filter persisted by
"ticklist use" applies; --all-categories ignores it for one invocation.

Example:
  ticklist list
  ticklist list --status active --sort priority
  ticklist list --category Work --search "review"`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "filter by category name or ID")
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "all", "filter by status: all, active, completed, archived")
	listCmd.Flags().StringVar(&listSearch, "search", "", "case-insensitive substring search (text, notes, category)")
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort: manual, created, due, priority (default from config)")
	listCmd.Flags().BoolVar(&listAllCats, "all-categories", false, "ignore the persisted category filter")
}

func runList(cmd *cobra.Command, args []string) error {
	filter, err := types.ParseStatusFilter(listStatus)
	if err != nil {
		return fmt.Errorf("invalid status %q", listStatus)
	}

	sortToken := listSort
	if sortToken == "" {
		sortToken = cfg.DefaultSort
	}
	sortOpt, err := types.ParseSortOption(sortToken)
	if err != nil {
		return fmt.Errorf("invalid sort %q", sortToken)
	}

	selectedID := ""
	switch {
	case listCategory != "":
		cat, err := findCategory(listCategory)
		if err != nil {
			return err
		}
		selectedID = cat.ID
	case !listAllCats:
		selectedID = checklist.SelectedCategory()
	}

	// The projection filters on the settled term. A one-shot invocation
	// has no keystroke stream to wait out, so settle immediately.
	checklist.Search.Update(listSearch)
	checklist.Search.Flush()

	items := query.Project(checklist.Items.Items(), checklist.Categories.Resolve, query.Params{
		SelectedCategoryID: selectedID,
		Filter:             filter,
		SearchTerm:         checklist.Search.Settled(),
		Sort:               sortOpt,
	})

	if flagJSON {
		if items == nil {
			items = []types.Item{}
		}
		return printJSON(items)
	}

	if len(items) == 0 {
		if listSearch != "" {
			fmt.Println("No items found")
		} else {
			fmt.Println("No items yet")
		}
		return nil
	}

	now := time.Now()
	for _, it := range items {
		printItem(it, now)
	}

	completed, total := checklist.Items.Counts()
	fmt.Printf("\n%d of %d completed\n", completed, total)
	return nil
}

func printItem(it types.Item, now time.Time) {
	cat := checklist.Categories.Resolve(it.CategoryID)

	text := it.Text
	switch {
	case it.Status == types.StatusArchived:
		text = theme.ArchivedStyle.Render(text)
	case it.Completed():
		text = theme.DoneStyle.Render(text)
	}

	line := fmt.Sprintf("%s %s %s",
		theme.IDStyle.Render(truncateID(it.ID)),
		theme.Checkbox(it.Completed()),
		text,
	)
	if marker := theme.PriorityMarker(it.Priority); marker != "" {
		line += " " + marker
	}
	line += "  " + theme.CategoryStyle(cat.Color).Render(cat.Name)
	if it.DueDate != nil {
		due := it.DueDate.Format("2006-01-02")
		if it.Overdue(now) {
			due = theme.OverdueStyle.Render(due + " (overdue)")
		}
		line += "  due " + due
	}
	fmt.Println(line)
}
