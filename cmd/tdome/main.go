// Package main provides the command-line interface for the tdome application.
package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/planning-tools/tdome/pkg/config"
	"github.com/planning-tools/tdome/pkg/gitlab"
	"github.com/planning-tools/tdome/pkg/logger"
	"github.com/planning-tools/tdome/pkg/planner"
	"github.com/planning-tools/tdome/pkg/thunderdome"
	"github.com/spf13/cobra"
)

var (
	quiet      bool
	verbose    bool
	configPath string
)

// loadConfig loads the configuration, falling back to defaults plus
// environment variables when no config file exists.
func loadConfig() config.Config {
	manager := config.NewManager(configPath)

	cfg, err := manager.GetConfigWithFallback()
	if err != nil {
		log.Fatalf("Failed to load configuration from %s: %v", manager.GetConfigPath(), err)
	}

	return cfg
}

// resolveCredentials merges positional credentials over the configured ones.
// The positional order is <api-key> <token>; explicit positionals win over
// environment and config-file values.
func resolveCredentials(cfg *config.Config, args []string) {
	if len(args) > 0 && args[0] != "" {
		cfg.ThunderdomeAPIKey = args[0]
	}
	if len(args) > 1 && args[1] != "" {
		cfg.GitLabToken = args[1]
	}
}

// newPlanner wires a Planner from the given configuration.
func newPlanner(cfg config.Config) *planner.Planner {
	return planner.NewPlanner(planner.NewPlannerParams{
		GitLab:  gitlab.NewClient(cfg.GitLabURL, cfg.GitLabToken),
		Grammar: gitlab.NewGrammar(cfg.GitLabURL),
		Board:   thunderdome.NewClient(cfg.ThunderdomeURL, cfg.ThunderdomeAPIKey),
		Logger:  logger.NewDefaultLogger(logger.Options{Verbose: verbose, Quiet: quiet}),
	})
}

func main() {
	// A missing .env file is fine; explicit env vars still apply.
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use:   "tdome",
		Short: "Thunderdome planning poker synchronization with GitLab",
		Long: `A CLI tool for creating and updating Thunderdome planning poker battles ` +
			`from GitLab issues, and for writing voted points back as issue weights.`,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	// Add subcommands
	rootCmd.AddCommand(
		createCreateCmd(),
		createUpdateCmd(),
		createFetchCmd(),
		createStoryboardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
