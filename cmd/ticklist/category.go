// Category command and its subcommands manage the category list.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ticklab/ticklist/internal/theme"
	"github.com/ticklab/ticklist/pkg/types"
)

var (
	categoryAddColor    string
	categoryUpdateName  string
	categoryUpdateColor string
)

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"cat"},
	Short:   "Manage categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE:  runCategoryList,
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryAdd,
}

var categoryUpdateCmd = &cobra.Command{
	Use:   "update <category>",
	Short: "Rename a category or change its color",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryUpdate,
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <category>",
	Short: "Delete a category",
	Long: `Delete removes a category. Items in the deleted category keep
their category ID and fall back to the default category when displayed.
The default category cannot be deleted.`,
	Args: cobra.ExactArgs(1),
	RunE: runCategoryDelete,
}

func init() {
	categoryAddCmd.Flags().StringVar(&categoryAddColor, "color", "", "hex color, e.g. #FF9500 (default: "+types.NewCategoryColor+")")
	categoryUpdateCmd.Flags().StringVar(&categoryUpdateName, "name", "", "new name")
	categoryUpdateCmd.Flags().StringVar(&categoryUpdateColor, "color", "", "new hex color")

	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryUpdateCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
}

func runCategoryList(cmd *cobra.Command, args []string) error {
	cats := checklist.Categories.List()
	if flagJSON {
		return printJSON(cats)
	}
	for _, c := range cats {
		line := fmt.Sprintf("%s %s",
			theme.IDStyle.Render(truncateID(c.ID)),
			theme.CategoryStyle(c.Color).Render(c.Name),
		)
		if c.ID == types.DefaultCategoryID {
			line += "  (default)"
		}
		fmt.Println(line)
	}
	return nil
}

func runCategoryAdd(cmd *cobra.Command, args []string) error {
	cat, err := checklist.Categories.Add(args[0], categoryAddColor)
	if err != nil {
		return fmt.Errorf("add category: %w", err)
	}
	if flagJSON {
		return printJSON(cat)
	}
	fmt.Printf("Added category %s: %s\n", truncateID(cat.ID), cat.Name)
	return nil
}

func runCategoryUpdate(cmd *cobra.Command, args []string) error {
	cat, err := findCategory(args[0])
	if err != nil {
		return err
	}
	name := cat.Name
	if cmd.Flags().Changed("name") {
		name = categoryUpdateName
	}
	if err := checklist.Categories.Update(cat.ID, name, categoryUpdateColor); err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if flagJSON {
		return printJSON(checklist.Categories.Resolve(cat.ID))
	}
	fmt.Printf("Updated category %s\n", truncateID(cat.ID))
	return nil
}

func runCategoryDelete(cmd *cobra.Command, args []string) error {
	cat, err := findCategory(args[0])
	if err != nil {
		return err
	}
	if cat.ID == types.DefaultCategoryID {
		return fmt.Errorf("the default category cannot be deleted")
	}
	checklist.Categories.Delete(cat.ID)
	if !flagJSON {
		fmt.Printf("Deleted category %s: %s\n", truncateID(cat.ID), cat.Name)
	}
	return nil
}
