package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration. Credentials never live here;
// they are kept in the system keyring.
type Config struct {
	// Base URL of the Tidal API. Override for testing against a stub.
	BaseURL string

	// Column width for the title column in table output
	OutputWidth int

	// Path to the local library database
	LibraryPath string
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	configDir := getConfigDir()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("base_url", "")
	v.SetDefault("output_width", 40)
	v.SetDefault("library_path", filepath.Join(configDir, "library.db"))

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	// Read from environment variables
	v.SetEnvPrefix("RIPTIDE")
	v.AutomaticEnv()

	// Map config to struct
	cfg := &Config{
		BaseURL:     v.GetString("base_url"),
		OutputWidth: v.GetInt("output_width"),
		LibraryPath: v.GetString("library_path"),
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "riptide")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// Save writes configuration to file
func (c *Config) Save() error {
	v := viper.New()

	// Set config file path
	configDir := getConfigDir()
	configFile := filepath.Join(configDir, "config.yaml")

	// Set values in viper
	v.Set("base_url", c.BaseURL)
	v.Set("output_width", c.OutputWidth)
	v.Set("library_path", c.LibraryPath)

	// Write to file
	return v.WriteConfigAs(configFile)
}
