package main

import (
	"github.com/planning-tools/tdome/pkg/planner"
	"github.com/spf13/cobra"
)

var (
	scopeMilestones []string
	scopeIterations []string
	scopeProjects   []string
	scopeEpics      []string
	scopeIssues     []string

	withWeighted       bool
	withClosed         bool
	labelPriorityPairs []string
)

// addScopeFlags registers the issue collection flags shared by the create and
// update commands.
func addScopeFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&scopeMilestones, "milestones", nil, "Milestone URLs to collect issues from")
	cmd.Flags().StringSliceVar(&scopeIterations, "iterations", nil, "Iteration URLs to collect issues from")
	cmd.Flags().StringSliceVar(&scopeProjects, "projects", nil, "Project URLs to collect issues from")
	cmd.Flags().StringSliceVar(&scopeEpics, "epics", nil, "Epic URLs to collect issues from")
	cmd.Flags().StringSliceVar(&scopeIssues, "issues", nil, "Issue URLs to collect")

	cmd.Flags().BoolVar(&withWeighted, "with-weighted", false, "Include issues that already have a weight")
	cmd.Flags().BoolVar(&withClosed, "with-closed", false, "Include closed issues")
	cmd.Flags().StringSliceVar(&labelPriorityPairs, "label-priority", nil,
		"Label/priority pairs mapping labels to plan priorities (e.g. prio::high,1,prio::low,5)")
}

// buildScopes assembles the collection scopes from the parsed flags.
func buildScopes() planner.Scopes {
	return planner.Scopes{
		Milestones: scopeMilestones,
		Iterations: scopeIterations,
		Projects:   scopeProjects,
		Epics:      scopeEpics,
		Issues:     scopeIssues,
	}
}

// buildPlanOptions assembles the plan synthesis options from the parsed flags.
func buildPlanOptions() (planner.PlanOptions, error) {
	priorities, err := planner.ParseLabelPriorities(labelPriorityPairs)
	if err != nil {
		return planner.PlanOptions{}, err
	}
	return planner.PlanOptions{
		LabelPriorities: priorities,
		WithWeighted:    withWeighted,
		WithClosed:      withClosed,
	}, nil
}
