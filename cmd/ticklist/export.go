// Export and import commands move the item list in and out as JSON.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ticklab/ticklist/internal/export"
)

var (
	exportOutput  string
	importReplace bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the full item list as JSON",
	Long: `Export writes every item, including archived ones, as indented
JSON to stdout or to the file given with --output.`,
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import items from a previously exported JSON file",
	Long: `Import reads items from an export file and appends them to the
list. With --replace, the current list is discarded first.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "discard the current list before importing")
}

func runExport(cmd *cobra.Command, args []string) error {
	data, err := export.Items(checklist.Items.Items())
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if exportOutput == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOutput, err)
	}
	fmt.Printf("Exported %d items to %s\n", len(checklist.Items.Items()), exportOutput)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	items, err := export.Import(data)
	if err != nil {
		return fmt.Errorf("import %s: %w", args[0], err)
	}

	n := checklist.Items.Restore(items, importReplace)
	fmt.Printf("Imported %d items\n", n)
	return nil
}
