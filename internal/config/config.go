package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the display preferences of the CLI
type Config struct {
	Color       bool              `toml:"color"`
	SuitSymbols bool              `toml:"suit_symbols"`
	SuitColors  map[string]string `toml:"suit_colors"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Color:       true,
		SuitSymbols: true,
		SuitColors: map[string]string{
			"spades":   "#d0d0d0",
			"clubs":    "#d0d0d0",
			"hearts":   "#e04040",
			"diamonds": "#e04040",
		},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "frenchdeck", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing.
// Keys absent from the file keep their default values.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes config to the config file
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// SetColor enables or disables colored output
func SetColor(enabled bool) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	config.Color = enabled
	return SaveConfig(config)
}

// SetSuitSymbols chooses between suit symbols and suit names
func SetSuitSymbols(enabled bool) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	config.SuitSymbols = enabled
	return SaveConfig(config)
}
