package main

import (
	"github.com/spf13/cobra"
)

var overwriteWeights bool

func createFetchCmd() *cobra.Command {
	fetchCmd := &cobra.Command{
		Use:   "fetch <battle-id> [api-key] [token]",
		Short: "Write voted battle points back to GitLab as issue weights",
		Long: `Fetch the plans of a battle and transfer their voted points to the linked
GitLab issues as weights. Issues that already carry a weight are left
untouched unless --overwrite is given.

Examples:
  tdome fetch 3f7c21aa
  tdome fetch 3f7c21aa --overwrite`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := loadConfig()
			resolveCredentials(&cfg, args[1:])

			return newPlanner(cfg).FetchPoints(args[0], overwriteWeights)
		},
	}

	fetchCmd.Flags().BoolVar(&overwriteWeights, "overwrite", false, "Overwrite existing issue weights")

	return fetchCmd
}
