// Init command sets up the config and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ticklab/ticklist/internal/paths"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file and data directory",
	Long: `Init creates the configuration file and the data directory if they
do not exist, and prints where ticklist keeps its files. Running it is
optional; every command sets up what it needs on first use.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	dataDir, err := paths.ResolveDataDir(flagDataDir, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{
			"configDir": configDir,
			"dataDir":   dataDir,
		})
	}
	fmt.Println("Config:", configDir)
	fmt.Println("Data:  ", dataDir)
	fmt.Printf("Ready with %d categories\n", len(checklist.Categories.List()))
	return nil
}
