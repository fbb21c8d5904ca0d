package planner

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/planning-tools/tdome/pkg/gitlab"
	"github.com/planning-tools/tdome/pkg/thunderdome"
)

// PlanOptions control which issues become plans and which priority they get.
type PlanOptions struct {
	// LabelPriorities assigns plan priorities from issue labels. Empty
	// means every plan gets PriorityNone and the output keeps discovery
	// order.
	LabelPriorities LabelPriorities
	// WithWeighted includes issues that already have a weight set.
	WithWeighted bool
	// WithClosed includes issues that are not open.
	WithClosed bool
}

// SynthesizePlans fetches the detail of every indexed issue and converts the
// ones passing the weighted/closed filters into board plans. When a label
// priority mapping is supplied the result is sorted ascending by priority;
// the sort is stable, ties keep discovery order. A single unfetchable issue
// is logged and skipped, never aborting the batch.
func (p *Planner) SynthesizePlans(index IssueIndex, opts PlanOptions) []thunderdome.Plan {
	p.logger.Infof("Fetching issues from GitLab...")

	var plans []thunderdome.Plan
	for _, id := range index.SortedIDs() {
		link := index[id]

		ref, err := p.grammar.ParseIssue(link)
		if err != nil {
			p.logger.Errorf("Skipping issue %d: %v", id, err)
			continue
		}

		issue, err := p.fetchIssue(ref)
		if err != nil {
			p.logger.Errorf("Failed to fetch issue %s: %v", ref, err)
			continue
		}

		if !opts.WithWeighted && issue.Weight != nil {
			p.logger.Infof("Skipping %s: issue already has a weight set", ref)
			continue
		}
		if !opts.WithClosed && issue.State != gitlab.StateOpened {
			p.logger.Infof("Skipping %s: issue is closed", ref)
			continue
		}

		plans = append(plans, thunderdome.Plan{
			ID:          strconv.Itoa(issue.ID),
			Name:        issue.Title,
			Description: issue.Description,
			Link:        issue.WebURL,
			ReferenceID: fmt.Sprintf("%s#%d", ref.Project, issue.IID),
			Type:        thunderdome.PlanTypeTask,
			Priority:    opts.LabelPriorities.PriorityFor(issue.Labels),
		})
	}

	if len(opts.LabelPriorities) > 0 {
		sort.SliceStable(plans, func(i, j int) bool {
			return plans[i].Priority < plans[j].Priority
		})
	}

	return plans
}
