package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrGitLabURLEmpty      = errors.New("gitlab_url cannot be empty")
	ErrThunderdomeURLEmpty = errors.New("thunderdome_url cannot be empty")
	ErrInvalidURL          = errors.New("invalid service URL")
)
