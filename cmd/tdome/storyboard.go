package main

import (
	"github.com/spf13/cobra"
)

var (
	filterGoals   []string
	filterColumns []string
)

func createStoryboardCmd() *cobra.Command {
	storyboardCmd := &cobra.Command{
		Use:   "storyboard",
		Short: "Interact with sprint planning storyboards",
	}

	fetchCmd := &cobra.Command{
		Use:   "fetch <board-id> <iteration-url> [api-key] [token]",
		Short: "Assign a GitLab iteration to the issues linked from a storyboard",
		Long: `Fetch the stories of a storyboard and assign the given GitLab iteration to
each linked issue via a quick action note.

Examples:
  tdome storyboard fetch 9b1e44cd https://gitlab.com/groups/acme/-/cadences/12/iterations/34
  tdome storyboard fetch 9b1e44cd https://gitlab.com/groups/acme/-/cadences/12/iterations/34 --filter-columns Committed`,
		Args: cobra.RangeArgs(2, 4),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := loadConfig()
			resolveCredentials(&cfg, args[2:])

			return newPlanner(cfg).AssignBoardIteration(args[0], args[1], filterGoals, filterColumns)
		},
	}

	fetchCmd.Flags().StringSliceVar(&filterGoals, "filter-goals", nil, "Only fetch stories from goals with the given names")
	fetchCmd.Flags().StringSliceVar(&filterColumns, "filter-columns", nil, "Only fetch stories from columns with the given names")

	storyboardCmd.AddCommand(fetchCmd)

	return storyboardCmd
}
