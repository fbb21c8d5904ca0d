//go:build unit

package gitlab

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPager_SinglePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		fmt.Fprint(w, `[{"id": 1}]`)
	}))
	defer server.Close()

	params := url.Values{"per_page": []string{"100"}}
	pager := NewPager(server.Client(), nil, server.URL, params)

	var pages [][]Issue
	for pager.Next() {
		var page []Issue
		require.NoError(t, pager.Decode(&page))
		pages = append(pages, page)
	}

	require.NoError(t, pager.Err())
	require.Len(t, pages, 1)
	assert.Equal(t, 1, pages[0][0].ID)
}

func TestPager_FollowsNextLinks(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			// The first request carries the query parameters; next links are
			// followed verbatim without re-applying them.
			assert.Equal(t, "all", r.URL.Query().Get("scope"))
			w.Header().Set("Link", fmt.Sprintf(`<%s/page2>; rel="next", <%s/>; rel="first"`, server.URL, server.URL))
			fmt.Fprint(w, `[{"id": 1}]`)
		case "/page2":
			assert.Empty(t, r.URL.Query().Get("scope"))
			w.Header().Set("Link", fmt.Sprintf(`<%s/page3>; rel="next"`, server.URL))
			fmt.Fprint(w, `[{"id": 2}]`)
		case "/page3":
			fmt.Fprint(w, `[{"id": 3}]`)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	params := url.Values{"scope": []string{"all"}}
	pager := NewPager(server.Client(), nil, server.URL+"/", params)

	var ids []int
	for pager.Next() {
		var page []Issue
		require.NoError(t, pager.Decode(&page))
		for _, issue := range page {
			ids = append(ids, issue.ID)
		}
	}

	require.NoError(t, pager.Err())
	assert.Equal(t, []int{1, 2, 3}, ids)
}

func TestPager_ErrorTerminatesSequence(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			w.Header().Set("Link", fmt.Sprintf(`<%s/page2>; rel="next"`, server.URL))
			fmt.Fprint(w, `[{"id": 1}]`)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	pager := NewPager(server.Client(), nil, server.URL+"/", nil)

	count := 0
	for pager.Next() {
		count++
	}

	assert.Equal(t, 1, count)
	assert.ErrorIs(t, pager.Err(), ErrRequestFailed)

	// The sequence stays terminated
	assert.False(t, pager.Next())
}

func TestPager_ErrorOnFirstPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	pager := NewPager(server.Client(), nil, server.URL, nil)

	assert.False(t, pager.Next())
	assert.ErrorIs(t, pager.Err(), ErrRequestFailed)
}

func TestPager_SendsHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get(tokenHeader))
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	header := http.Header{}
	header.Set(tokenHeader, "secret")
	pager := NewPager(server.Client(), header, server.URL, nil)

	assert.True(t, pager.Next())
	require.NoError(t, pager.Err())
}

func TestNextLink(t *testing.T) {
	tests := []struct {
		name     string
		link     string
		expected string
	}{
		{
			name:     "next among multiple relations",
			link:     `<https://example.com/p2>; rel="next", <https://example.com/p9>; rel="last"`,
			expected: "https://example.com/p2",
		},
		{
			name:     "no next relation",
			link:     `<https://example.com/p1>; rel="first", <https://example.com/p9>; rel="last"`,
			expected: "",
		},
		{
			name:     "empty header",
			link:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.link != "" {
				header.Set("Link", tt.link)
			}
			assert.Equal(t, tt.expected, nextLink(header))
		})
	}
}
