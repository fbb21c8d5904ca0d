package gitlab

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// pathSegment matches a single group, subgroup or project path segment.
const pathSegment = `[a-zA-Z0-9_-]+`

// IssueRef identifies a single issue by its URL path captures.
type IssueRef struct {
	Org     string
	Project string
	IID     int
	URL     string
}

// String returns the project-scoped display reference of the issue.
func (r IssueRef) String() string {
	return fmt.Sprintf("%s#%d", r.Project, r.IID)
}

// OrgMilestoneRef identifies a group-level milestone.
type OrgMilestoneRef struct {
	Org string
	IID int
}

// ProjectMilestoneRef identifies a project-level milestone.
type ProjectMilestoneRef struct {
	Org     string
	Project string
	IID     int
}

// IterationRef identifies an iteration inside a cadence.
type IterationRef struct {
	Org     string
	Cadence int
	ID      int
}

// EpicRef identifies a group-level epic.
type EpicRef struct {
	Org string
	IID int
}

// ProjectRef identifies a project.
type ProjectRef struct {
	Org     string
	Project string
}

// Grammar holds the URL patterns of a single GitLab host. Project paths may
// contain nested subgroup segments; only the organization and the final
// project segment are captured.
type Grammar struct {
	issue            *regexp.Regexp
	orgMilestone     *regexp.Regexp
	projectMilestone *regexp.Regexp
	iteration        *regexp.Regexp
	epic             *regexp.Regexp
	project          *regexp.Regexp
}

// NewGrammar compiles the URL grammars anchored at the given base URL.
func NewGrammar(baseURL string) *Grammar {
	base := regexp.QuoteMeta(strings.TrimSuffix(baseURL, "/"))
	projectPath := fmt.Sprintf(`(?P<org>%s)/(?:%s/)*(?P<project>%s)`, pathSegment, pathSegment, pathSegment)

	return &Grammar{
		issue: regexp.MustCompile(fmt.Sprintf(
			`^%s/%s/-/issues/(?P<issue>[0-9]+)$`, base, projectPath)),
		orgMilestone: regexp.MustCompile(fmt.Sprintf(
			`^%s/groups/(?P<org>%s)/-/milestones/(?P<milestone>[0-9]+)$`, base, pathSegment)),
		projectMilestone: regexp.MustCompile(fmt.Sprintf(
			`^%s/%s/-/milestones/(?P<milestone>[0-9]+)$`, base, projectPath)),
		iteration: regexp.MustCompile(fmt.Sprintf(
			`^%s/groups/(?P<org>%s)/-/cadences/(?P<cadence>[0-9]+)/iterations/(?P<iteration>[0-9]+)$`, base, pathSegment)),
		epic: regexp.MustCompile(fmt.Sprintf(
			`^%s/groups/(?P<org>%s)/-/epics/(?P<epic>[0-9]+)$`, base, pathSegment)),
		project: regexp.MustCompile(fmt.Sprintf(
			`^%s/%s$`, base, projectPath)),
	}
}

// ParseIssue parses an issue URL into an IssueRef.
func (g *Grammar) ParseIssue(url string) (*IssueRef, error) {
	captures, err := match(g.issue, url)
	if err != nil {
		return nil, err
	}
	iid, err := atoiCapture("issue", captures["issue"])
	if err != nil {
		return nil, err
	}
	return &IssueRef{
		Org:     captures["org"],
		Project: captures["project"],
		IID:     iid,
		URL:     url,
	}, nil
}

// ParseOrgMilestone parses a group milestone URL.
func (g *Grammar) ParseOrgMilestone(url string) (*OrgMilestoneRef, error) {
	captures, err := match(g.orgMilestone, url)
	if err != nil {
		return nil, err
	}
	iid, err := atoiCapture("milestone", captures["milestone"])
	if err != nil {
		return nil, err
	}
	return &OrgMilestoneRef{
		Org: captures["org"],
		IID: iid,
	}, nil
}

// ParseProjectMilestone parses a project milestone URL.
func (g *Grammar) ParseProjectMilestone(url string) (*ProjectMilestoneRef, error) {
	captures, err := match(g.projectMilestone, url)
	if err != nil {
		return nil, err
	}
	iid, err := atoiCapture("milestone", captures["milestone"])
	if err != nil {
		return nil, err
	}
	return &ProjectMilestoneRef{
		Org:     captures["org"],
		Project: captures["project"],
		IID:     iid,
	}, nil
}

// ParseIteration parses an iteration URL.
func (g *Grammar) ParseIteration(url string) (*IterationRef, error) {
	captures, err := match(g.iteration, url)
	if err != nil {
		return nil, err
	}
	cadence, err := atoiCapture("cadence", captures["cadence"])
	if err != nil {
		return nil, err
	}
	id, err := atoiCapture("iteration", captures["iteration"])
	if err != nil {
		return nil, err
	}
	return &IterationRef{
		Org:     captures["org"],
		Cadence: cadence,
		ID:      id,
	}, nil
}

// ParseEpic parses an epic URL.
func (g *Grammar) ParseEpic(url string) (*EpicRef, error) {
	captures, err := match(g.epic, url)
	if err != nil {
		return nil, err
	}
	iid, err := atoiCapture("epic", captures["epic"])
	if err != nil {
		return nil, err
	}
	return &EpicRef{
		Org: captures["org"],
		IID: iid,
	}, nil
}

// ParseProject parses a project URL.
func (g *Grammar) ParseProject(url string) (*ProjectRef, error) {
	captures, err := match(g.project, url)
	if err != nil {
		return nil, err
	}
	return &ProjectRef{
		Org:     captures["org"],
		Project: captures["project"],
	}, nil
}

// match runs the pattern against the URL and maps named captures to values.
func match(pattern *regexp.Regexp, url string) (map[string]string, error) {
	groups := pattern.FindStringSubmatch(url)
	if groups == nil {
		return nil, fmt.Errorf("%w: %q does not match %q", ErrMalformedURL, url, pattern.String())
	}

	captures := make(map[string]string)
	for i, name := range pattern.SubexpNames() {
		if name != "" {
			captures[name] = groups[i]
		}
	}
	return captures, nil
}

// atoiCapture converts a numeric capture. The grammars only capture digit
// runs, but a run exceeding the int range still fails conversion.
func atoiCapture(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q out of range", ErrMalformedURL, name, s)
	}
	return n, nil
}
