// Add command creates checklist items, singly or in bulk from stdin.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ticklab/ticklist/internal/textutil"
	"github.com/ticklab/ticklist/pkg/types"
)

var (
	addCategory string
	addPriority string
	addDue      string
	addNotes    string
	addStdin    bool
)

var addCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add a checklist item",
	Long: `Add creates a new item with the given text.

With --stdin, one item is created per line read from standard input.
Pasted lists work as-is: leading bullets, checkboxes, and numbering are
stripped, and blank lines are skipped.

Example:
  ticklist add "Buy milk"
  ticklist add "Review PR" --category Work --priority high --due 2026-09-15
  pbpaste | ticklist add --stdin`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "category name or ID (default: General)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "priority: none, low, medium, high")
	addCmd.Flags().StringVar(&addDue, "due", "", "due date (YYYY-MM-DD or RFC 3339)")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "free-text notes")
	addCmd.Flags().BoolVar(&addStdin, "stdin", false, "read one item per line from standard input")
}

func runAdd(cmd *cobra.Command, args []string) error {
	priority, err := types.ParsePriority(addPriority)
	if err != nil {
		return fmt.Errorf("invalid priority %q", addPriority)
	}

	categoryID := ""
	if addCategory != "" {
		cat, err := findCategory(addCategory)
		if err != nil {
			return err
		}
		categoryID = cat.ID
	}

	if addStdin {
		return runAddBulk(categoryID, priority)
	}

	if len(args) == 0 {
		return fmt.Errorf("item text required (or use --stdin)")
	}
	text := strings.Join(args, " ")

	due, err := parseDue(addDue)
	if err != nil {
		return err
	}

	item, err := checklist.Items.Add(text, categoryID, priority)
	if err != nil {
		return fmt.Errorf("add item: %w", err)
	}
	if due != nil || addNotes != "" {
		item.DueDate = due
		item.Notes = addNotes
		if err := checklist.Items.Update(item); err != nil {
			return err
		}
	}

	if flagJSON {
		return printJSON(item)
	}
	fmt.Printf("Added %s: %s\n", truncateID(item.ID), item.Text)
	return nil
}

func runAddBulk(categoryID string, priority types.Priority) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	lines := textutil.CleanLines(string(data))
	added := checklist.Items.AddBulk(lines, categoryID, priority)

	if flagJSON {
		return printJSON(added)
	}
	fmt.Printf("Added %d items\n", len(added))
	return nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
