//go:build unit

package thunderdome

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-key")
}

func TestRealClient_CurrentUser(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/user", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get(apiKeyHeader))
		fmt.Fprint(w, `{"data": {"id": "user-1", "name": "Voter"}}`)
	}))

	user, err := client.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "Voter", user.Name)
}

func TestRealClient_CurrentUser_Unauthorized(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.CurrentUser()
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRealClient_BattlePlans(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/battles/battle-1", r.URL.Path)
		fmt.Fprint(w, `{"data": {"plans": [
			{"id": "p1", "name": "Fix login", "link": "https://gitlab.com/acme/widgets/-/issues/1", "points": "5"},
			{"id": "p2", "name": "Add signup", "points": ""}
		]}}`)
	}))

	plans, err := client.BattlePlans("battle-1")
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "Fix login", plans[0].Name)
	assert.Equal(t, "5", plans[0].Points)
	assert.Empty(t, plans[1].Points)
}

func TestRealClient_CreateBattle(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users/user-1/battles", r.URL.Path)
		assert.Equal(t, "user-1", r.URL.Query().Get("userId"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Sprint poker", payload["name"])
		assert.Equal(t, "ceil", payload["pointAverageRounding"])
		assert.Len(t, payload["plans"], 1)

		fmt.Fprint(w, `{"data": {"id": "battle-1"}}`)
	}))

	plans := []Plan{{Name: "Fix login", Type: PlanTypeTask}}
	err := client.CreateBattle("user-1", BattleSettings{
		Name:                 "Sprint poker",
		PointAverageRounding: "ceil",
	}, plans)
	require.NoError(t, err)
}

func TestRealClient_CreateBattle_TeamRoute(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/teams/team-7/users/user-1/battles", r.URL.Path)
		assert.Equal(t, "team-7", r.URL.Query().Get("teamId"))
		fmt.Fprint(w, `{"data": {"id": "battle-1"}}`)
	}))

	err := client.CreateBattle("user-1", BattleSettings{
		Name:   "Sprint poker",
		TeamID: "team-7",
	}, nil)
	require.NoError(t, err)
}

func TestRealClient_AddBattlePlans(t *testing.T) {
	var received []Plan
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/battles/battle-1/plans", r.URL.Path)

		var plan Plan
		require.NoError(t, json.NewDecoder(r.Body).Decode(&plan))
		received = append(received, plan)
		fmt.Fprint(w, `{"data": {}}`)
	}))

	plans := []Plan{
		{Name: "Fix login", Type: PlanTypeTask},
		{Name: "Add signup", Type: PlanTypeTask},
	}
	require.NoError(t, client.AddBattlePlans("battle-1", plans))

	require.Len(t, received, 2)
	// The plan addition endpoint reads planName, mirrored from name
	assert.Equal(t, "Fix login", received[0].PlanName)
	assert.Equal(t, "Add signup", received[1].PlanName)
}

func TestRealClient_AddBattlePlans_ContinuesOnError(t *testing.T) {
	// The first plan fails; the remaining ones are still posted and the
	// failure is reported per plan.
	calls := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fmt.Fprint(w, `{"data": {}}`)
	}))

	plans := []Plan{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	err := client.AddBattlePlans("battle-1", plans)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), `plan "a"`)
	assert.Equal(t, 3, calls)
}

func storyboardPayload() string {
	return `{"data": {"goals": [
		{"name": "Sprint 12", "columns": [
			{"name": "Todo", "stories": [{"id": "s1", "name": "one", "link": "l1"}]},
			{"name": "Done", "stories": [{"id": "s2", "name": "two", "link": "l2"}]}
		]},
		{"name": "Backlog", "columns": [
			{"name": "Todo", "stories": [{"id": "s3", "name": "three", "link": "l3"}]}
		]}
	]}}`
}

func TestRealClient_StoryboardStories(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/storyboards/board-1", r.URL.Path)
		fmt.Fprint(w, storyboardPayload())
	}))

	stories, err := client.StoryboardStories("board-1", nil, nil)
	require.NoError(t, err)
	require.Len(t, stories, 3)
}

func TestRealClient_StoryboardStories_Filtered(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, storyboardPayload())
	}))

	stories, err := client.StoryboardStories("board-1", []string{"Sprint 12"}, []string{"Done"})
	require.NoError(t, err)
	require.Len(t, stories, 1)
	assert.Equal(t, "s2", stories[0].ID)
}
