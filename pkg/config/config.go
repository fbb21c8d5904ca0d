// Package config provides configuration management functionality for the tdome application.
package config

import (
	"fmt"
	"net/url"
	"os"
)

// Config represents the application configuration.
type Config struct {
	// GitLabURL is the base URL of the GitLab instance.
	GitLabURL string `yaml:"gitlab_url"`
	// GitLabToken is the private token for the GitLab API.
	GitLabToken string `yaml:"gitlab_token,omitempty"`
	// ThunderdomeURL is the base URL of the Thunderdome instance.
	ThunderdomeURL string `yaml:"thunderdome_url"`
	// ThunderdomeAPIKey is the API key for the Thunderdome API.
	ThunderdomeAPIKey string `yaml:"thunderdome_api_key,omitempty"`
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.GitLabURL == "" {
		return ErrGitLabURLEmpty
	}
	if _, err := url.ParseRequestURI(c.GitLabURL); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidURL, c.GitLabURL)
	}
	if c.ThunderdomeURL == "" {
		return ErrThunderdomeURLEmpty
	}
	if _, err := url.ParseRequestURI(c.ThunderdomeURL); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidURL, c.ThunderdomeURL)
	}
	return nil
}

// ApplyEnv fills in credentials from environment variables when they are not
// already set. Explicit values always win over the environment.
func (c *Config) ApplyEnv() {
	if c.GitLabToken == "" {
		c.GitLabToken = os.Getenv("GITLAB_TOKEN")
	}
	if c.ThunderdomeAPIKey == "" {
		c.ThunderdomeAPIKey = os.Getenv("THUNDERDOME_API_KEY")
	}
}
