// Package gitlab provides a client for the subset of the GitLab REST API
// used to aggregate issues and write estimation weights back.
package gitlab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=gitlab.go -destination=mockgitlab.gen.go -package=gitlab

const (
	// apiPath is the REST API prefix on every GitLab host.
	apiPath = "/api/v4"
	// paginationLimit is the maximum number of issues fetched per request.
	paginationLimit = 100
	// requestTimeout bounds every single API call.
	requestTimeout = 10 * time.Second
	// tokenHeader carries the private token on every request.
	tokenHeader = "PRIVATE-TOKEN"
)

// Issue states as reported by the GitLab API.
const (
	StateOpened = "opened"
	StateClosed = "closed"
)

// Issue represents a GitLab issue.
type Issue struct {
	ID          int      `json:"id"`
	IID         int      `json:"iid"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	WebURL      string   `json:"web_url"`
	State       string   `json:"state"`
	Labels      []string `json:"labels"`
	Weight      *int     `json:"weight"`

	// HasWeightField reports whether the weight key was present in the
	// detail payload at all. GitLab omits it for callers that are not
	// allowed to see it, which is indistinguishable from a missing value
	// without this probe. Only set on detail fetches.
	HasWeightField bool `json:"-"`
}

// Client interface defines the GitLab API operations used by the sync engine.
type Client interface {
	// GroupID resolves a group path to its numeric ID.
	GroupID(groupPath string) (int, error)

	// ProjectID resolves a project path within a group to its numeric ID.
	ProjectID(org, projectPath string) (int, error)

	// GroupMilestoneTitle resolves a group milestone IID to its title.
	GroupMilestoneTitle(groupID, milestoneIID int) (string, error)

	// ProjectMilestoneTitle resolves a project milestone IID to its title.
	ProjectMilestoneTitle(projectID, milestoneIID int) (string, error)

	// IssuesByMilestone lists all issues filtered by milestone title.
	IssuesByMilestone(milestoneTitle string) ([]Issue, error)

	// IssuesByIteration lists all issues assigned to an iteration.
	IssuesByIteration(iterationID int) ([]Issue, error)

	// ProjectIssues lists all issues of a project.
	ProjectIssues(projectID int) ([]Issue, error)

	// EpicIssues lists all issues attached to a group epic.
	EpicIssues(groupID, epicIID int) ([]Issue, error)

	// Issue fetches the detail of a single issue.
	Issue(projectID, issueIID int) (*Issue, error)

	// SetIssueWeight writes the weight of a single issue.
	SetIssueWeight(projectID, issueIID, weight int) error

	// AddIssueNote posts a comment on a single issue.
	AddIssueNote(projectID, issueIID int, body string) error
}

// realClient is the HTTP implementation of Client.
type realClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient creates a new GitLab API client for the given host and token.
func NewClient(baseURL, token string) Client {
	return &realClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		client:  &http.Client{},
	}
}

// listOptions are the query parameters shared by all issue listings.
type listOptions struct {
	PerPage int    `url:"per_page"`
	Scope   string `url:"scope"`
}

// issueListOptions filter the global issues listing.
type issueListOptions struct {
	listOptions
	Milestone   string `url:"milestone,omitempty"`
	IterationID int    `url:"iteration_id,omitempty"`
}

// IssuesByMilestone lists all issues filtered by milestone title. The GitLab
// API only filters this listing by title, not by milestone ID, so two
// same-titled milestones in different scopes collide here.
func (c *realClient) IssuesByMilestone(milestoneTitle string) ([]Issue, error) {
	return c.listIssues("/issues", issueListOptions{
		listOptions: defaultListOptions(),
		Milestone:   milestoneTitle,
	})
}

// IssuesByIteration lists all issues assigned to an iteration.
func (c *realClient) IssuesByIteration(iterationID int) ([]Issue, error) {
	return c.listIssues("/issues", issueListOptions{
		listOptions: defaultListOptions(),
		IterationID: iterationID,
	})
}

// ProjectIssues lists all issues of a project.
func (c *realClient) ProjectIssues(projectID int) ([]Issue, error) {
	return c.listIssues(fmt.Sprintf("/projects/%d/issues", projectID), defaultListOptions())
}

// EpicIssues lists all issues attached to a group epic.
func (c *realClient) EpicIssues(groupID, epicIID int) ([]Issue, error) {
	return c.listIssues(fmt.Sprintf("/groups/%d/epics/%d/issues", groupID, epicIID), defaultListOptions())
}

// Issue fetches the detail of a single issue and probes the raw payload for
// the presence of the weight field.
func (c *realClient) Issue(projectID, issueIID int) (*Issue, error) {
	body, err := c.do(http.MethodGet, fmt.Sprintf("/projects/%d/issues/%d", projectID, issueIID), nil, nil)
	if err != nil {
		return nil, err
	}

	var issue Issue
	if err := json.Unmarshal(body, &issue); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	_, issue.HasWeightField = raw["weight"]

	return &issue, nil
}

// SetIssueWeight writes the weight of a single issue.
func (c *realClient) SetIssueWeight(projectID, issueIID, weight int) error {
	payload := map[string]int{"weight": weight}
	_, err := c.do(http.MethodPut, fmt.Sprintf("/projects/%d/issues/%d", projectID, issueIID), nil, payload)
	return err
}

// AddIssueNote posts a comment on a single issue.
func (c *realClient) AddIssueNote(projectID, issueIID int, body string) error {
	params := url.Values{"body": []string{body}}
	_, err := c.do(http.MethodPost, fmt.Sprintf("/projects/%d/issues/%d/notes", projectID, issueIID), params, nil)
	return err
}

// defaultListOptions returns the pagination parameters for issue listings.
func defaultListOptions() listOptions {
	return listOptions{
		PerPage: paginationLimit,
		Scope:   "all",
	}
}

// listIssues paginates an issue listing endpoint, collecting every page. On a
// mid-pagination failure the pages fetched so far are returned together with
// the error; the read is best-effort, not transactional.
func (c *realClient) listIssues(path string, opts interface{}) ([]Issue, error) {
	params, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	header := http.Header{}
	header.Set(tokenHeader, c.token)

	pager := NewPager(c.client, header, c.baseURL+apiPath+path, params)

	var issues []Issue
	for pager.Next() {
		var page []Issue
		if err := pager.Decode(&page); err != nil {
			return issues, fmt.Errorf("%w: %w", ErrRequestFailed, err)
		}
		issues = append(issues, page...)
	}

	return issues, pager.Err()
}

// get performs a GET request and decodes the JSON response into v.
func (c *realClient) get(path string, params url.Values, v interface{}) error {
	body, err := c.do(http.MethodGet, path, params, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	return nil
}

// do performs a single API request and returns the raw response body.
func (c *realClient) do(method, path string, params url.Values, payload interface{}) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	target := c.baseURL + apiPath + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	req.Header.Set(tokenHeader, c.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, method, path); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	return body, nil
}

// checkStatus maps non-success HTTP statuses to sentinel errors.
func (c *realClient) checkStatus(resp *http.Response, method, path string) error {
	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", ErrIssueNotFound, method, path)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s %s returned %s", ErrUnauthorized, method, path, resp.Status)
	default:
		return fmt.Errorf("%w: %s %s returned %s", ErrRequestFailed, method, path, resp.Status)
	}
}
