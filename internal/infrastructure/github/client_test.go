// Package github implements the scm collaborator ports against the GitHub
// REST API.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	gh "github.com/google/go-github/v60/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetver-tech/fleetver/internal/domain/scm"
	fverrors "github.com/fleetver-tech/fleetver/internal/errors"
)

var testRepo = scm.Repository{Owner: "acme", Name: "api"}

// newTestClient wires a Client against a local httptest server.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	ghClient := gh.NewClient(nil)
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	ghClient.BaseURL = baseURL

	return &Client{gh: ghClient, baseBranch: "main"}
}

func TestClient_RecentCommits(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/api/commits", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		fmt.Fprint(w, `[
			{"sha": "abc123", "commit": {"message": "fix: rotate keys [priority-release]"}},
			{"sha": "def456", "commit": {"message": "chore: tidy"}}
		]`)
	}))

	commits, err := client.RecentCommits(context.Background(), testRepo, 10)
	require.NoError(t, err)
	require.Len(t, commits, 2)
	assert.Equal(t, "abc123", commits[0].SHA)
	assert.Equal(t, "fix: rotate keys [priority-release]", commits[0].Message)
}

func TestClient_RecentCommits_TransportFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := client.RecentCommits(context.Background(), testRepo, 10)
	require.Error(t, err)
	assert.True(t, fverrors.IsRecoverable(err))
	assert.True(t, fverrors.IsKind(err, fverrors.KindNetwork))
}

func TestClient_LatestReleaseTag(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/api/releases", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("per_page"))
		fmt.Fprint(w, `[{"tag_name": "v2.3.1"}]`)
	}))

	tag, err := client.LatestReleaseTag(context.Background(), testRepo)
	require.NoError(t, err)
	assert.Equal(t, "v2.3.1", tag)
}

func TestClient_LatestReleaseTag_NoReleases(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))

	tag, err := client.LatestReleaseTag(context.Background(), testRepo)
	require.NoError(t, err)
	assert.Empty(t, tag)
}

func TestClient_ClosedPullRequests(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/api/pulls", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "closed", q.Get("state"))
		assert.Equal(t, "main", q.Get("base"))
		assert.Equal(t, "updated", q.Get("sort"))
		assert.Equal(t, "desc", q.Get("direction"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "50", q.Get("per_page"))
		fmt.Fprint(w, `[
			{
				"number": 41,
				"title": "Add rate limiting",
				"merged_at": "2026-02-10T09:00:00Z",
				"labels": [{"name": "feature"}, {"name": "needs-docs"}]
			},
			{
				"number": 40,
				"title": "Abandoned spike",
				"merged_at": null,
				"labels": [{"name": "wontfix"}]
			}
		]`)
	}))

	prs, err := client.ClosedPullRequests(context.Background(), testRepo, 2, 50)
	require.NoError(t, err)
	require.Len(t, prs, 2)

	assert.Equal(t, 41, prs[0].Number)
	assert.True(t, prs[0].Merged())
	assert.Equal(t, []string{"feature", "needs-docs"}, prs[0].Labels)

	assert.Equal(t, 40, prs[1].Number)
	assert.False(t, prs[1].Merged())
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, "main", client.baseBranch)
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	_, err := NewClient(context.Background(), Options{BaseURL: "://bad"})
	require.Error(t, err)
	assert.True(t, fverrors.IsKind(err, fverrors.KindConfig))
}
