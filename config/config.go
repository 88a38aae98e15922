package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the complete minivec configuration
type Config struct {
	// Store configuration
	Store StoreConfig `yaml:"store" json:"store"`

	// Search configuration
	Search SearchConfig `yaml:"search" json:"search"`
}

// StoreConfig contains document store configuration
type StoreConfig struct {
	// SnapshotPath is where the CLI loads and saves the JSON snapshot
	SnapshotPath string `yaml:"snapshot_path" json:"snapshot_path"`
}

// SearchConfig contains search-related configuration
type SearchConfig struct {
	// DefaultTopN is used when a search does not specify a result count
	DefaultTopN int `yaml:"default_top_n" json:"default_top_n"`
}

// LoadConfig loads configuration from a file with environment overrides
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	// If no config path specified, try default location
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			configPath = filepath.Join(homeDir, ".minivec.yml")
		}
	}

	// Load from file if it exists
	if configPath != "" {
		if err := loadConfigFromFile(configPath, config); err != nil {
			// Only return error if file exists but can't be read
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
			}
		}
	}

	// Override with environment variables
	loadConfigFromEnv(config)

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			SnapshotPath: "data/documents.json",
		},
		Search: SearchConfig{
			DefaultTopN: 5,
		},
	}
}

// loadConfigFromFile loads configuration from a YAML file
func loadConfigFromFile(path string, config *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, config)
}

// loadConfigFromEnv applies environment variable overrides
func loadConfigFromEnv(config *Config) {
	if path := os.Getenv("MINIVEC_SNAPSHOT_PATH"); path != "" {
		config.Store.SnapshotPath = path
	}
	if topN := os.Getenv("MINIVEC_DEFAULT_TOP_N"); topN != "" {
		if n, err := strconv.Atoi(topN); err == nil {
			config.Search.DefaultTopN = n
		}
	}
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.Store.SnapshotPath == "" {
		return fmt.Errorf("store snapshot path cannot be empty")
	}

	if c.Search.DefaultTopN < 1 {
		return fmt.Errorf("default top N must be positive, got %d", c.Search.DefaultTopN)
	}

	return nil
}
