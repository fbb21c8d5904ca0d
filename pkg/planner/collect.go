package planner

import (
	"fmt"

	"github.com/planning-tools/tdome/pkg/gitlab"
)

// Scopes lists the tracker URLs to aggregate issues from, one list per scope
// kind.
type Scopes struct {
	Milestones []string
	Iterations []string
	Projects   []string
	Epics      []string
	Issues     []string
}

// Collect aggregates the issues of every listed scope into a single
// deduplicated index. Malformed URLs and lookup failures are logged and skip
// only the affected scope; a truncated listing still contributes the pages it
// returned. Running Collect twice against unchanged tracker state yields an
// identical index.
func (p *Planner) Collect(scopes Scopes) IssueIndex {
	kinds := []struct {
		name  string
		links []string
		fetch func(string) ([]gitlab.Issue, error)
	}{
		{"milestones", scopes.Milestones, p.collectMilestone},
		{"iterations", scopes.Iterations, p.collectIteration},
		{"projects", scopes.Projects, p.collectProject},
		{"epics", scopes.Epics, p.collectEpic},
		{"issues", scopes.Issues, p.collectIssue},
	}

	index := make(IssueIndex)
	for _, kind := range kinds {
		if len(kind.links) == 0 {
			continue
		}
		p.logger.Infof("Fetching %s from GitLab...", kind.name)

		for _, link := range kind.links {
			issues, err := kind.fetch(link)
			if err != nil {
				p.logger.Errorf("Failed to collect issues from %s: %v", link, err)
			}
			for _, issue := range issues {
				index[issue.ID] = issue.WebURL
			}
		}
	}

	p.logger.Infof("Found %d unique GitLab issues", len(index))
	return index
}

// collectMilestone lists the issues of a group or project milestone. The
// GitLab issue listing filters milestones by title only, so the milestone IID
// from the URL is first resolved to its title.
func (p *Planner) collectMilestone(link string) ([]gitlab.Issue, error) {
	orgRef, orgErr := p.grammar.ParseOrgMilestone(link)
	if orgErr == nil {
		groupID, err := p.gitlab.GroupID(orgRef.Org)
		if err != nil {
			return nil, err
		}
		title, err := p.gitlab.GroupMilestoneTitle(groupID, orgRef.IID)
		if err != nil {
			return nil, err
		}
		return p.gitlab.IssuesByMilestone(title)
	}

	ref, err := p.grammar.ParseProjectMilestone(link)
	if err != nil {
		return nil, fmt.Errorf("not a group or project milestone URL: %w; %w", orgErr, err)
	}
	projectID, err := p.gitlab.ProjectID(ref.Org, ref.Project)
	if err != nil {
		return nil, err
	}
	title, err := p.gitlab.ProjectMilestoneTitle(projectID, ref.IID)
	if err != nil {
		return nil, err
	}
	return p.gitlab.IssuesByMilestone(title)
}

// collectIteration lists the issues assigned to an iteration.
func (p *Planner) collectIteration(link string) ([]gitlab.Issue, error) {
	ref, err := p.grammar.ParseIteration(link)
	if err != nil {
		return nil, err
	}
	return p.gitlab.IssuesByIteration(ref.ID)
}

// collectProject lists the issues of a project.
func (p *Planner) collectProject(link string) ([]gitlab.Issue, error) {
	ref, err := p.grammar.ParseProject(link)
	if err != nil {
		return nil, err
	}
	projectID, err := p.gitlab.ProjectID(ref.Org, ref.Project)
	if err != nil {
		return nil, err
	}
	return p.gitlab.ProjectIssues(projectID)
}

// collectEpic lists the issues attached to a group epic.
func (p *Planner) collectEpic(link string) ([]gitlab.Issue, error) {
	ref, err := p.grammar.ParseEpic(link)
	if err != nil {
		return nil, err
	}
	groupID, err := p.gitlab.GroupID(ref.Org)
	if err != nil {
		return nil, err
	}
	return p.gitlab.EpicIssues(groupID, ref.IID)
}

// collectIssue fetches one explicitly linked issue.
func (p *Planner) collectIssue(link string) ([]gitlab.Issue, error) {
	ref, err := p.grammar.ParseIssue(link)
	if err != nil {
		return nil, err
	}
	issue, err := p.fetchIssue(ref)
	if err != nil {
		return nil, err
	}
	return []gitlab.Issue{*issue}, nil
}

// fetchIssue resolves the project of an issue reference and fetches its
// detail.
func (p *Planner) fetchIssue(ref *gitlab.IssueRef) (*gitlab.Issue, error) {
	projectID, err := p.gitlab.ProjectID(ref.Org, ref.Project)
	if err != nil {
		return nil, err
	}
	return p.gitlab.Issue(projectID, ref.IID)
}
