// Root command for the ticklist CLI. Global flags, directory resolution,
// and the store lifecycle shared by every subcommand.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ticklab/ticklist/internal/paths"
	"github.com/ticklab/ticklist/internal/store"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// checklist is the global store instance, opened by PersistentPreRunE and
// closed by PersistentPostRunE.
var checklist *store.Store

// cfg holds the loaded configuration for all subcommands.
var cfg *appConfig

var rootCmd = &cobra.Command{
	Use:   "ticklist",
	Short: "Ticklist is a personal checklist for your terminal",
	Long: `Ticklist manages a flat list of checklist items that can be
categorized, prioritized, filtered, sorted, and reordered. Everything is
stored locally; nothing ever leaves your machine.`,
	Version:            Version,
	SilenceUsage:       true,
	PersistentPreRunE:  openStore,
	PersistentPostRunE: closeStore,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(unarchiveCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statsCmd)
}

// openStore loads configuration and opens the store. Skipped for the
// version command, which must work without touching the filesystem.
func openStore(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err = loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dataDir, err := paths.ResolveDataDir(flagDataDir, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	checklist, err = store.Open(dataDir, store.Options{
		SaveDelay:   time.Duration(cfg.SaveDelayMS) * time.Millisecond,
		SearchDelay: time.Duration(cfg.SearchDelayMS) * time.Millisecond,
	})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	return nil
}

// closeStore flushes pending writes and releases the store. A persistence
// failure is reported but does not fail the command; the mutation itself
// already happened in memory.
func closeStore(cmd *cobra.Command, args []string) error {
	if checklist == nil {
		return nil
	}
	if err := checklist.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: data may not have persisted:", err)
	}
	checklist = nil
	return nil
}
