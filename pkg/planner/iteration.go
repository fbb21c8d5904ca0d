package planner

import (
	"fmt"

	"github.com/planning-tools/tdome/pkg/thunderdome"
)

// AssignIteration assigns a GitLab iteration to the issues linked by the
// given stories. The GitLab API does not allow setting an issue's iteration
// directly, so a quick-action comment is posted instead.
// See https://gitlab.com/gitlab-org/gitlab/-/issues/395790
func (p *Planner) AssignIteration(stories []thunderdome.Story, iterationID int) {
	p.logger.Infof("Assigning iteration to GitLab issues...")

	for _, story := range stories {
		if story.Link == "" {
			p.logger.Warnf("Skipping story %s: no link set for story", story.ID)
			continue
		}

		ref, err := p.grammar.ParseIssue(story.Link)
		if err != nil {
			p.logger.Errorf("Skipping story %s: %v", story.ID, err)
			continue
		}

		projectID, err := p.gitlab.ProjectID(ref.Org, ref.Project)
		if err != nil {
			p.logger.Errorf("Skipping story %s: %v", story.ID, err)
			continue
		}

		body := fmt.Sprintf("/iteration *iteration:%d", iterationID)
		if err := p.gitlab.AddIssueNote(projectID, ref.IID, body); err != nil {
			p.logger.Errorf("Failed to set iteration %d for issue %s: %v", iterationID, ref, err)
			continue
		}

		p.logger.Infof("Set iteration to %d for %s", iterationID, ref)
	}
}
