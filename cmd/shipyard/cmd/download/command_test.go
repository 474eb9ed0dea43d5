package download

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/shipyard"
	"github.com/agentstation/shipyard/internal/appcontext"
	"github.com/agentstation/shipyard/internal/github/githubtest"
)

func newApp(t *testing.T, downloads string) *appcontext.Mock {
	t.Helper()
	srv := githubtest.NewServer(t)
	srv.AddShip("org/repo", "zephyr",
		githubtest.File{Name: "ship.yaml", Data: []byte("name: Zephyr\n")},
		githubtest.File{Name: "zephyr.ship", Data: []byte("design")},
	)

	client, err := shipyard.New(
		shipyard.WithAPIURL(srv.URL),
		shipyard.WithHTTPClient(srv.Client()),
		shipyard.WithRepositories("org/repo"),
	)
	require.NoError(t, err)
	return &appcontext.Mock{
		ClientFunc:   func() (shipyard.Client, error) { return client, nil },
		Format:       "table",
		DownloadsDir: downloads,
	}
}

func run(t *testing.T, app appcontext.Interface, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(app)
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestDownloadIntoDownloadsDirectory(t *testing.T) {
	downloads := filepath.Join(t.TempDir(), "downloads")
	app := newApp(t, downloads)

	stdout, err := run(t, app, "Zephyr")
	require.NoError(t, err)

	dir := filepath.Join(downloads, "zephyr")
	assert.Contains(t, stdout, "Downloaded Zephyr to "+dir)
	data, err := os.ReadFile(filepath.Join(dir, "zephyr.ship"))
	require.NoError(t, err)
	assert.Equal(t, "design", string(data))
	assert.FileExists(t, filepath.Join(dir, "ship.yaml"))
}

func TestDownloadTwiceCreatesNumberedFolder(t *testing.T) {
	downloads := t.TempDir()
	app := newApp(t, downloads)

	_, err := run(t, app, "0")
	require.NoError(t, err)
	stdout, err := run(t, app, "0")
	require.NoError(t, err)

	assert.Contains(t, stdout, filepath.Join(downloads, "zephyr(1)"))
	assert.DirExists(t, filepath.Join(downloads, "zephyr(1)"))
}

func TestDownloadDestFlag(t *testing.T) {
	dest := t.TempDir()
	app := newApp(t, filepath.Join(t.TempDir(), "unused"))

	_, err := run(t, app, "zephyr", "--dest", dest)
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(dest, "zephyr"))
	assert.NoDirExists(t, app.DownloadsDir)
}

func TestDownloadUnknownShip(t *testing.T) {
	_, err := run(t, newApp(t, t.TempDir()), "dreadnought")
	assert.Error(t, err)
}
