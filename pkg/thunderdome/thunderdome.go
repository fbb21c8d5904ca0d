// Package thunderdome provides a client for the Thunderdome planning poker
// API: battles, plans and storyboards.
package thunderdome

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=thunderdome.go -destination=mockthunderdome.gen.go -package=thunderdome

const (
	// requestTimeout bounds every single API call.
	requestTimeout = 10 * time.Second
	// apiKeyHeader carries the API key on every request.
	apiKeyHeader = "X-API-Key"

	// PlanTypeTask is the plan type used for plans synthesized from issues.
	PlanTypeTask = "Task"
)

// Plan represents a single votable item in a battle. PlanName mirrors Name:
// the battle creation endpoint reads "name" while the plan addition endpoint
// reads "planName".
type Plan struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	PlanName    string `json:"planName,omitempty"`
	Type        string `json:"type"`
	ReferenceID string `json:"referenceId,omitempty"`
	Link        string `json:"link,omitempty"`
	Description string `json:"description,omitempty"`
	Priority    int    `json:"priority,omitempty"`
	Points      string `json:"points,omitempty"`
}

// Story represents a single story on a storyboard.
type Story struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Link   string `json:"link"`
	Points int    `json:"points"`
}

// User represents the authenticated Thunderdome user.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BattleSettings hold the creation parameters of a battle.
type BattleSettings struct {
	Name                 string
	PointAverageRounding string
	PointValuesAllowed   []string
	AutoFinishVoting     bool
	Leaders              []string
	EstimationScaleID    string
	HideVoterIdentity    bool
	JoinCode             string
	LeaderCode           string
	// TeamID, when set, creates the battle under a team instead of the user.
	TeamID string
}

// Client interface defines the Thunderdome API operations used by the sync engine.
type Client interface {
	// CurrentUser resolves the user owning the API key. This is the only
	// call whose failure is fatal to a run: without an acting identity no
	// battle can be created.
	CurrentUser() (*User, error)

	// BattlePlans fetches the plans of a battle.
	BattlePlans(battleID string) ([]Plan, error)

	// CreateBattle creates a battle owned by the given user with the given
	// plans embedded.
	CreateBattle(userID string, settings BattleSettings, plans []Plan) error

	// AddBattlePlans posts additional plans to an existing battle.
	AddBattlePlans(battleID string, plans []Plan) error

	// StoryboardStories fetches the stories of a storyboard, flattening
	// goals and columns. Non-empty filters restrict results to goals or
	// columns with the given names.
	StoryboardStories(boardID string, filterGoals, filterColumns []string) ([]Story, error)
}

// realClient is the HTTP implementation of Client.
type realClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a new Thunderdome API client for the given host and API key.
func NewClient(baseURL, apiKey string) Client {
	return &realClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{},
	}
}

// CurrentUser resolves the user owning the API key.
func (c *realClient) CurrentUser() (*User, error) {
	var response struct {
		Data User `json:"data"`
	}
	if err := c.do(http.MethodGet, "/api/auth/user", nil, nil, &response); err != nil {
		return nil, err
	}
	return &response.Data, nil
}

// BattlePlans fetches the plans of a battle.
func (c *realClient) BattlePlans(battleID string) ([]Plan, error) {
	var response struct {
		Data struct {
			Plans []Plan `json:"plans"`
		} `json:"data"`
	}
	if err := c.do(http.MethodGet, "/api/battles/"+battleID, nil, nil, &response); err != nil {
		return nil, err
	}
	return response.Data.Plans, nil
}

// battleRequest is the battle creation payload.
type battleRequest struct {
	Name                 string   `json:"name"`
	Plans                []Plan   `json:"plans"`
	PointAverageRounding string   `json:"pointAverageRounding"`
	PointValuesAllowed   []string `json:"pointValuesAllowed"`
	AutoFinishVoting     bool     `json:"autoFinishVoting"`
	Leaders              []string `json:"leaders,omitempty"`
	EstimationScaleID    string   `json:"estimationScaleId,omitempty"`
	HideVoterIdentity    bool     `json:"hideVoterIdentity"`
	JoinCode             string   `json:"joinCode,omitempty"`
	LeaderCode           string   `json:"leaderCode,omitempty"`
}

// CreateBattle creates a battle owned by the given user with plans embedded.
func (c *realClient) CreateBattle(userID string, settings BattleSettings, plans []Plan) error {
	path := fmt.Sprintf("/api/users/%s/battles", userID)
	params := url.Values{"userId": []string{userID}}
	if settings.TeamID != "" {
		path = fmt.Sprintf("/api/teams/%s/users/%s/battles", settings.TeamID, userID)
		params.Set("teamId", settings.TeamID)
	}

	if plans == nil {
		plans = []Plan{}
	}
	if settings.PointValuesAllowed == nil {
		settings.PointValuesAllowed = []string{}
	}

	payload := battleRequest{
		Name:                 settings.Name,
		Plans:                plans,
		PointAverageRounding: settings.PointAverageRounding,
		PointValuesAllowed:   settings.PointValuesAllowed,
		AutoFinishVoting:     settings.AutoFinishVoting,
		Leaders:              settings.Leaders,
		EstimationScaleID:    settings.EstimationScaleID,
		HideVoterIdentity:    settings.HideVoterIdentity,
		JoinCode:             settings.JoinCode,
		LeaderCode:           settings.LeaderCode,
	}

	return c.do(http.MethodPost, path, params, payload, nil)
}

// AddBattlePlans posts additional plans to an existing battle, one request
// per plan. The plan addition endpoint reads the name from planName, so it is
// mirrored before sending. A failed plan never aborts the remaining ones; the
// failures are joined into the returned error.
func (c *realClient) AddBattlePlans(battleID string, plans []Plan) error {
	var errs []error
	for _, plan := range plans {
		plan.PlanName = plan.Name
		if err := c.do(http.MethodPost, fmt.Sprintf("/api/battles/%s/plans", battleID), nil, plan, nil); err != nil {
			errs = append(errs, fmt.Errorf("plan %q: %w", plan.Name, err))
		}
	}
	return errors.Join(errs...)
}

// storyboardResponse mirrors the nested goals/columns/stories layout.
type storyboardResponse struct {
	Data struct {
		Goals []struct {
			Name    string `json:"name"`
			Columns []struct {
				Name    string  `json:"name"`
				Stories []Story `json:"stories"`
			} `json:"columns"`
		} `json:"goals"`
	} `json:"data"`
}

// StoryboardStories fetches the stories of a storyboard, flattening goals and
// columns and applying optional name filters.
func (c *realClient) StoryboardStories(boardID string, filterGoals, filterColumns []string) ([]Story, error) {
	var response storyboardResponse
	if err := c.do(http.MethodGet, "/api/storyboards/"+boardID, nil, nil, &response); err != nil {
		return nil, err
	}

	var stories []Story
	for _, goal := range response.Data.Goals {
		if len(filterGoals) > 0 && !contains(filterGoals, goal.Name) {
			continue
		}
		for _, column := range goal.Columns {
			if len(filterColumns) > 0 && !contains(filterColumns, column.Name) {
				continue
			}
			stories = append(stories, column.Stories...)
		}
	}
	return stories, nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// do performs a single API request and decodes the JSON response into v when
// v is non-nil.
func (c *realClient) do(method, path string, params url.Values, payload, v interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRequestFailed, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s %s returned %s", ErrUnauthorized, method, path, resp.Status)
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return fmt.Errorf("%w: %s %s returned %s", ErrRequestFailed, method, path, resp.Status)
	}

	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	return nil
}
