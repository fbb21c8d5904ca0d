package main

import (
	"github.com/spf13/cobra"
)

func createUpdateCmd() *cobra.Command {
	updateCmd := &cobra.Command{
		Use:   "update <battle-id> [api-key] [token]",
		Short: "Add newly collected issues to an existing battle",
		Long: `Update an existing Thunderdome battle by adding one plan per collected issue
that is not yet represented on the battle. Issues are matched to plans by link.

Examples:
  tdome update 3f7c21aa --milestones https://gitlab.com/groups/acme/-/milestones/4
  tdome update 3f7c21aa --projects https://gitlab.com/acme/widgets --with-weighted`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := loadConfig()
			resolveCredentials(&cfg, args[1:])

			opts, err := buildPlanOptions()
			if err != nil {
				return err
			}

			return newPlanner(cfg).UpdateBattle(args[0], buildScopes(), opts)
		},
	}

	addScopeFlags(updateCmd)

	return updateCmd
}
