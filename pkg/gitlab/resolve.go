package gitlab

import (
	"fmt"

	"github.com/google/go-querystring/query"
)

// groupResult is one entry of the group search listing.
type groupResult struct {
	ID   int    `json:"id"`
	Path string `json:"path"`
}

// projectResult is one entry of the group-scoped project search listing.
type projectResult struct {
	ID   int    `json:"id"`
	Path string `json:"path"`
}

// milestoneResult is one entry of a milestone listing.
type milestoneResult struct {
	ID    int    `json:"id"`
	IID   int    `json:"iid"`
	Title string `json:"title"`
}

// searchOptions drive the server-side fuzzy searches used for resolution.
type searchOptions struct {
	Scope  string `url:"scope,omitempty"`
	Search string `url:"search"`
}

// milestoneOptions select milestones by IID.
type milestoneOptions struct {
	IIDs []int `url:"iids[]"`
}

// GroupID resolves a group path to its numeric ID. The server-side search is
// fuzzy, so results are filtered to an exact path match client-side.
func (c *realClient) GroupID(groupPath string) (int, error) {
	params, err := query.Values(searchOptions{Search: groupPath})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	var groups []groupResult
	if err := c.get("/groups", params, &groups); err != nil {
		return 0, err
	}

	for _, group := range groups {
		if group.Path == groupPath {
			return group.ID, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", ErrGroupNotFound, groupPath)
}

// ProjectID resolves a project path within a group to its numeric ID, again
// filtering the fuzzy search results to an exact path match.
func (c *realClient) ProjectID(org, projectPath string) (int, error) {
	groupID, err := c.GroupID(org)
	if err != nil {
		return 0, err
	}

	params, err := query.Values(searchOptions{Scope: "projects", Search: projectPath})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	var projects []projectResult
	if err := c.get(fmt.Sprintf("/groups/%d/search", groupID), params, &projects); err != nil {
		return 0, err
	}

	for _, project := range projects {
		if project.Path == projectPath {
			return project.ID, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", ErrProjectNotFound, projectPath)
}

// GroupMilestoneTitle resolves a group milestone IID to its title.
func (c *realClient) GroupMilestoneTitle(groupID, milestoneIID int) (string, error) {
	return c.milestoneTitle(fmt.Sprintf("/groups/%d/milestones", groupID), milestoneIID)
}

// ProjectMilestoneTitle resolves a project milestone IID to its title.
func (c *realClient) ProjectMilestoneTitle(projectID, milestoneIID int) (string, error) {
	return c.milestoneTitle(fmt.Sprintf("/projects/%d/milestones", projectID), milestoneIID)
}

func (c *realClient) milestoneTitle(path string, milestoneIID int) (string, error) {
	params, err := query.Values(milestoneOptions{IIDs: []int{milestoneIID}})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	var milestones []milestoneResult
	if err := c.get(path, params, &milestones); err != nil {
		return "", err
	}

	if len(milestones) == 0 {
		return "", fmt.Errorf("%w: iid %d", ErrMilestoneNotFound, milestoneIID)
	}

	return milestones[0].Title, nil
}
