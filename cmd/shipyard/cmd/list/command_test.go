package list

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/shipyard"
	"github.com/agentstation/shipyard/internal/appcontext"
	"github.com/agentstation/shipyard/internal/cmd/output"
	"github.com/agentstation/shipyard/internal/github/githubtest"
)

func fleet(t *testing.T) *githubtest.Server {
	t.Helper()
	srv := githubtest.NewServer(t)
	srv.AddShip("org/repo", "zephyr",
		githubtest.File{Name: "ship.yaml", Data: []byte("name: Zephyr\ntags: [carrier, strategic]\nauthor: Max\nversion: 1.0\n")},
		githubtest.File{Name: "zephyr.png", Data: []byte("png")},
	)
	srv.AddShip("org/repo", "hermes",
		githubtest.File{Name: "ship.yaml", Data: []byte("name: Hermes\ntags: [frigate]\nauthor: Ann\n")},
	)
	srv.AddShip("org/repo", "atlas",
		githubtest.File{Name: "ship.yaml", Data: []byte("name: Atlas\ntags: [carrier]\nauthor: Ann\n")},
	)
	return srv
}

func run(t *testing.T, srv *githubtest.Server, format string, args ...string) (string, string) {
	t.Helper()
	client, err := shipyard.New(
		shipyard.WithAPIURL(srv.URL),
		shipyard.WithHTTPClient(srv.Client()),
		shipyard.WithRepositories("org/repo"),
	)
	require.NoError(t, err)
	app := &appcontext.Mock{
		ClientFunc: func() (shipyard.Client, error) { return client, nil },
		Format:     format,
	}

	cmd := NewCommand(app)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	return stdout.String(), stderr.String()
}

func decode(t *testing.T, s string) []output.ShipView {
	t.Helper()
	var views []output.ShipView
	require.NoError(t, json.Unmarshal([]byte(s), &views))
	return views
}

func TestListJSON(t *testing.T) {
	stdout, stderr := run(t, fleet(t), "json")

	views := decode(t, stdout)
	require.Len(t, views, 3)
	assert.Equal(t, "Zephyr", views[0].Name)
	assert.Equal(t, []string{"carrier", "strategic"}, views[0].Tags)
	assert.Equal(t, "1.0", views[0].Version)
	assert.Equal(t, "zephyr.png", views[0].Image)
	assert.Equal(t, 0, views[0].Index)
	assert.Equal(t, 2, views[2].Index)
	assert.Contains(t, stderr, "Found 3 ships")
}

func TestListSearchKeepsCatalogIndex(t *testing.T) {
	stdout, _ := run(t, fleet(t), "json", "--search", "carrier")

	views := decode(t, stdout)
	require.Len(t, views, 2)
	assert.Equal(t, "Zephyr", views[0].Name)
	assert.Equal(t, 0, views[0].Index)
	assert.Equal(t, "Atlas", views[1].Name)
	assert.Equal(t, 2, views[1].Index)
}

func TestListFilters(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "author", args: []string{"--author", "ann"}, want: []string{"Hermes", "Atlas"}},
		{name: "tag", args: []string{"--tag", "frigate"}, want: []string{"Hermes"}},
		{name: "limit", args: []string{"--limit", "1"}, want: []string{"Zephyr"}},
		{name: "no match", args: []string{"--search", "dreadnought"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _ := run(t, fleet(t), "json", tt.args...)
			got := []string{}
			for _, v := range decode(t, stdout) {
				got = append(got, v.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListTable(t *testing.T) {
	stdout, _ := run(t, fleet(t), "table")

	assert.Contains(t, stdout, "Zephyr")
	assert.Contains(t, stdout, "carrier, strategic")
	assert.Contains(t, stdout, "zephyr.png")
}

func TestListYAML(t *testing.T) {
	stdout, _ := run(t, fleet(t), "yaml")

	var views []output.ShipView
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &views))
	require.Len(t, views, 3)
	assert.Equal(t, "Hermes", views[1].Name)
	assert.Equal(t, "Ann", views[1].Author)
}
