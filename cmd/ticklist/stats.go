// Stats command summarizes the checklist by status and category.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ticklab/ticklist/internal/theme"
	"github.com/ticklab/ticklist/pkg/types"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show item counts by status and category",
	RunE:  runStats,
}

// statsReport is the JSON shape of the stats output.
type statsReport struct {
	Total      int             `json:"total"`
	Active     int             `json:"active"`
	Completed  int             `json:"completed"`
	Archived   int             `json:"archived"`
	Overdue    int             `json:"overdue"`
	Percent    int             `json:"percentCompleted"`
	Categories []statsCategory `json:"categories"`
}

type statsCategory struct {
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

func runStats(cmd *cobra.Command, args []string) error {
	items := checklist.Items.Items()
	now := time.Now()

	report := statsReport{Total: len(items)}
	perCat := map[string]*statsCategory{}
	catOrder := []string{}

	for _, it := range items {
		switch {
		case it.Status == types.StatusArchived:
			report.Archived++
		case it.Completed():
			report.Completed++
		default:
			report.Active++
		}
		if it.Overdue(now) {
			report.Overdue++
		}

		cat := checklist.Categories.Resolve(it.CategoryID)
		entry, ok := perCat[cat.ID]
		if !ok {
			entry = &statsCategory{Name: cat.Name}
			perCat[cat.ID] = entry
			catOrder = append(catOrder, cat.ID)
		}
		entry.Total++
		if it.Completed() {
			entry.Completed++
		}
	}
	if report.Total > 0 {
		report.Percent = report.Completed * 100 / report.Total
	}
	for _, id := range catOrder {
		report.Categories = append(report.Categories, *perCat[id])
	}

	if flagJSON {
		return printJSON(report)
	}

	fmt.Println(theme.HeaderStyle.Render("Checklist"))
	fmt.Printf("  total     %d\n", report.Total)
	fmt.Printf("  active    %d\n", report.Active)
	fmt.Printf("  completed %d (%d%%)\n", report.Completed, report.Percent)
	fmt.Printf("  archived  %d\n", report.Archived)
	if report.Overdue > 0 {
		fmt.Printf("  overdue   %s\n", theme.OverdueStyle.Render(fmt.Sprintf("%d", report.Overdue)))
	}

	if len(report.Categories) > 0 {
		fmt.Println()
		fmt.Println(theme.HeaderStyle.Render("By category"))
		for _, id := range catOrder {
			cat := checklist.Categories.Resolve(id)
			entry := perCat[id]
			fmt.Printf("  %s %d/%d\n",
				theme.CategoryStyle(cat.Color).Render(cat.Name),
				entry.Completed, entry.Total)
		}
	}
	return nil
}
