package github_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/shipyard/internal/github"
	"github.com/agentstation/shipyard/internal/github/githubtest"
	"github.com/agentstation/shipyard/pkg/errors"
)

func newFixture(t *testing.T) (*githubtest.Server, *github.Client) {
	t.Helper()
	srv := githubtest.NewServer(t)
	srv.AddShip("org/repo", "zephyr",
		githubtest.File{Name: "ship.yaml", Data: []byte("name: Zephyr")},
		githubtest.File{Name: "zephyr.png", Data: []byte("png")},
		githubtest.File{Name: "variants", Dir: true},
	)
	srv.AddShipsFile("org/repo", "README.md")
	return srv, github.NewClient(srv.URL, srv.Client())
}

func TestRepository(t *testing.T) {
	_, client := newFixture(t)

	repo, err := client.Repository(context.Background(), "org/repo")
	require.NoError(t, err)
	assert.Equal(t, "org/repo", repo.FullName)
	assert.Equal(t, "main", repo.DefaultBranch)

	_, err = client.Repository(context.Background(), "org/missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.False(t, errors.IsRateLimited(err))
}

func TestRepositoryIDValidation(t *testing.T) {
	client := github.NewClient("", nil)
	for _, id := range []string{"", "org", "/repo", "org/", "a/b/c"} {
		_, err := client.Repository(context.Background(), id)
		assert.True(t, errors.IsValidationError(err), "id %q", id)
	}
}

func TestContents(t *testing.T) {
	_, client := newFixture(t)

	entries, err := client.Contents(context.Background(), "org/repo", "ships")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "zephyr", entries[0].Name)
	assert.Equal(t, "dir", entries[0].Type)
	assert.Equal(t, "ships/zephyr", entries[0].Path)
	assert.Equal(t, "README.md", entries[1].Name)
	assert.Equal(t, "file", entries[1].Type)
}

func TestListAndDownload(t *testing.T) {
	_, client := newFixture(t)

	entries, err := client.Contents(context.Background(), "org/repo", "ships")
	require.NoError(t, err)

	files, err := client.List(context.Background(), entries[0].URL)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "ship.yaml", files[0].Name)
	assert.Equal(t, "ships/zephyr/ship.yaml", files[0].Path)
	assert.True(t, files[2].IsDir())
	assert.Empty(t, files[2].DownloadURL)

	data, err := client.Download(context.Background(), files[1].DownloadURL)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusForbidden, errors.IsRateLimited},
		{http.StatusTooManyRequests, errors.IsRateLimited},
		{http.StatusNotFound, errors.IsNotFound},
		{http.StatusInternalServerError, errors.IsTransient},
		{http.StatusUnauthorized, errors.IsTransient},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv, client := newFixture(t)
			srv.FailPath(githubtest.ContentsPath("org/repo", "ships"), tt.status)

			_, err := client.Contents(context.Background(), "org/repo", "ships")
			require.Error(t, err)
			assert.True(t, tt.check(err))

			var remote *errors.RemoteError
			require.ErrorAs(t, err, &remote)
			assert.Equal(t, tt.status, remote.StatusCode)
		})
	}
}

func TestRequestHeaders(t *testing.T) {
	srv := githubtest.NewServer(t)
	srv.AddRepository("org/repo")

	client := github.NewClient(srv.URL, srv.Client())
	_, err := client.Repository(context.Background(), "org/repo")
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.github+json", srv.LastHeader("Accept"))
	assert.Equal(t, "shipyard", srv.LastHeader("User-Agent"))
	assert.Equal(t, []string{"/repos/org/repo"}, srv.Requests())
}

func TestContentsURL(t *testing.T) {
	client := github.NewClient("https://api.example.com/", nil)
	u, err := client.ContentsURL("org/repo", "/ships/my ship/")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/repos/org/repo/contents/ships/my%20ship", u)
}
