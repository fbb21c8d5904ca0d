package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() (Config, error)
	DefaultConfig() Config
	GetConfigPath() string
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
// An empty path selects the default location under the user's home directory.
func NewManager(configPath string) Manager {
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configPath = filepath.Join(homeDir, ".tdome", "config.yaml")
	}
	return &realManager{
		configPath: configPath,
	}
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	config.ApplyEnv()

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// GetConfigWithFallback loads configuration from file with fallback to default.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	if config, err := c.GetConfig(); err == nil {
		return config, nil
	}

	config := c.DefaultConfig()
	config.ApplyEnv()
	return config, nil
}

// DefaultConfig returns the default configuration.
func (c *realManager) DefaultConfig() Config {
	return Config{
		GitLabURL:      "https://gitlab.com",
		ThunderdomeURL: "https://thunderdome.dev",
	}
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}
