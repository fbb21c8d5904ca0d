package main

import (
	"fmt"

	"github.com/planning-tools/tdome/pkg/thunderdome"
	"github.com/spf13/cobra"
)

var (
	battleName     string
	autoFinish     bool
	battleLeaders  []string
	scaleID        string
	hideIdentity   bool
	joinPassword   string
	leaderPassword string
	teamID         string
	roundType      string
	allowedValues  []string
)

// validRoundTypes are the point average rounding modes Thunderdome accepts.
var validRoundTypes = map[string]struct{}{
	"ceil":  {},
	"round": {},
	"floor": {},
}

func createCreateCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create [api-key] [token]",
		Short: "Create a battle from collected GitLab issues",
		Long: `Create a new Thunderdome battle with one plan per issue collected from the
given milestone, iteration, project, epic and issue scopes.

Examples:
  tdome create --milestones https://gitlab.com/groups/acme/-/milestones/4
  tdome create --projects https://gitlab.com/acme/widgets --with-closed
  tdome create --epics https://gitlab.com/groups/acme/-/epics/7 --label-priority prio::high,1`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if _, ok := validRoundTypes[roundType]; !ok {
				return fmt.Errorf("invalid round type %q: must be one of ceil, round, floor", roundType)
			}

			cfg := loadConfig()
			resolveCredentials(&cfg, args)

			opts, err := buildPlanOptions()
			if err != nil {
				return err
			}

			settings := thunderdome.BattleSettings{
				Name:                 battleName,
				PointAverageRounding: roundType,
				PointValuesAllowed:   allowedValues,
				AutoFinishVoting:     autoFinish,
				Leaders:              battleLeaders,
				EstimationScaleID:    scaleID,
				HideVoterIdentity:    hideIdentity,
				JoinCode:             joinPassword,
				LeaderCode:           leaderPassword,
				TeamID:               teamID,
			}

			return newPlanner(cfg).CreateBattle(buildScopes(), opts, settings)
		},
	}

	addScopeFlags(createCmd)

	createCmd.Flags().StringVar(&battleName, "name", "API Game", "Name of the battle to create")
	createCmd.Flags().BoolVar(&autoFinish, "auto-finish", false, "Finish voting automatically once everyone voted")
	createCmd.Flags().StringSliceVar(&battleLeaders, "leaders", nil, "Additional leader user IDs")
	createCmd.Flags().StringVar(&scaleID, "scale-id", "", "Estimation scale ID")
	createCmd.Flags().BoolVar(&hideIdentity, "hide-identity", false, "Hide voter identities")
	createCmd.Flags().StringVar(&joinPassword, "join-password", "", "Password required to join the battle")
	createCmd.Flags().StringVar(&leaderPassword, "leader-password", "", "Password required to lead the battle")
	createCmd.Flags().StringVar(&teamID, "team-id", "", "Create the battle under the given team")
	createCmd.Flags().StringVar(&roundType, "round-type", "ceil", "Point average rounding: ceil, round or floor")
	createCmd.Flags().StringSliceVar(&allowedValues, "allowed-values", nil, "Point values allowed for voting")

	return createCmd
}
