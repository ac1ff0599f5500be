// Config loading for the ticklist CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyDataDir       = "data_dir"
	cfgKeySaveDelayMS   = "save_delay_ms"
	cfgKeySearchDelayMS = "search_delay_ms"
	cfgKeyDefaultSort   = "default_sort"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# Ticklist configuration

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Debounce window for item persistence, in milliseconds.
save_delay_ms: 100

# Settle delay for interactive search, in milliseconds.
search_delay_ms: 300

# Sort applied by "ticklist list" when --sort is not given.
# One of: manual, created, due, priority.
default_sort: manual
`

// appConfig is the resolved configuration used by the commands.
type appConfig struct {
	DataDir       string
	SaveDelayMS   int
	SearchDelayMS int
	DefaultSort   string
}

// loadConfig reads config.yaml from the config directory using Viper,
// creating the directory and a default file on first run. A missing
// config.yaml is not an error.
func loadConfig(configDir string) (*appConfig, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeySaveDelayMS, 100)
	v.SetDefault(cfgKeySearchDelayMS, 300)
	v.SetDefault(cfgKeyDefaultSort, "manual")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &appConfig{
		DataDir:       v.GetString(cfgKeyDataDir),
		SaveDelayMS:   v.GetInt(cfgKeySaveDelayMS),
		SearchDelayMS: v.GetInt(cfgKeySearchDelayMS),
		DefaultSort:   v.GetString(cfgKeyDefaultSort),
	}, nil
}

// ensureDefaultConfigFile writes the default config.yaml if none exists.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileName+"."+configFileType)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
