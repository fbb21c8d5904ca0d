package planner

import "github.com/planning-tools/tdome/pkg/thunderdome"

// Reconcile returns the entries of the candidate index that are not yet
// represented on the board. The difference is keyed by link, since board
// plans do not carry tracker issue IDs. Reconciling twice against unchanged
// board and tracker state yields an empty residual the second time.
func (p *Planner) Reconcile(existing []thunderdome.Plan, index IssueIndex) IssueIndex {
	links := make([]string, 0, len(existing))
	for _, plan := range existing {
		links = append(links, plan.Link)
	}

	residual := index.SubtractLinks(links)
	p.logger.Infof("Found %d issues not yet on the board", len(residual))
	return residual
}
