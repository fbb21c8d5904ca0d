package planner

import (
	"strconv"

	"github.com/planning-tools/tdome/pkg/thunderdome"
)

// TransferPoints writes the voted points of every plan back to its linked
// issue as a weight. Every skip and failure is scoped to a single plan; one
// bad plan never aborts the batch.
func (p *Planner) TransferPoints(plans []thunderdome.Plan, overwrite bool) {
	p.logger.Infof("Transferring points to GitLab...")
	for _, plan := range plans {
		p.transferPlan(plan, overwrite)
	}
}

func (p *Planner) transferPlan(plan thunderdome.Plan, overwrite bool) {
	if plan.Points == "" {
		p.logger.Warnf("Skipping plan %s: no points set for plan", plan.ID)
		return
	}
	points, err := strconv.Atoi(plan.Points)
	if err != nil {
		p.logger.Errorf("Skipping plan %s: points is not an integer, found %q instead", plan.ID, plan.Points)
		return
	}

	if plan.Link == "" {
		p.logger.Warnf("Skipping plan %s: no link set for plan", plan.ID)
		return
	}
	ref, err := p.grammar.ParseIssue(plan.Link)
	if err != nil {
		p.logger.Errorf("Skipping plan %s: %v", plan.ID, err)
		return
	}

	projectID, err := p.gitlab.ProjectID(ref.Org, ref.Project)
	if err != nil {
		p.logger.Errorf("Skipping plan %s: %v", plan.ID, err)
		return
	}
	issue, err := p.gitlab.Issue(projectID, ref.IID)
	if err != nil {
		p.logger.Errorf("Failed to fetch issue %s: %v", ref, err)
		return
	}

	// A 2xx detail response without a weight field means the token is not
	// allowed to see weights, not that no weight is set.
	if !issue.HasWeightField {
		p.logger.Errorf("No weight field for issue %s in API response, are you authenticated?", ref)
		return
	}

	if issue.Weight != nil && !overwrite {
		p.logger.Infof("Skipping %s: issue already has a weight set", ref)
		return
	}

	if err := p.gitlab.SetIssueWeight(projectID, ref.IID, points); err != nil {
		p.logger.Errorf("Failed to set weight for %s: %v", ref, err)
		return
	}

	if issue.Weight != nil {
		p.logger.Infof("Changed weight to %d for %s (was %d)", points, ref, *issue.Weight)
	} else {
		p.logger.Infof("Set weight to %d for %s", points, ref)
	}
}
