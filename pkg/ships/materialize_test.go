package ships_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/shipyard/pkg/ships"
)

type fakeSource struct {
	listings  map[string][]ships.File
	files     map[string][]byte
	listErr   error
	downloads []string
}

func (f *fakeSource) List(_ context.Context, url string) ([]ships.File, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listings[url], nil
}

func (f *fakeSource) Download(_ context.Context, url string) ([]byte, error) {
	f.downloads = append(f.downloads, url)
	data, ok := f.files[url]
	if !ok {
		return nil, errors.New("404 not found")
	}
	return data, nil
}

const zephyrLocator = "https://api.github.com/repos/org/repo/contents/ships/zephyr"

func zephyrSource() *fakeSource {
	return &fakeSource{
		listings: map[string][]ships.File{
			zephyrLocator: {
				{Name: "ship.yaml", Path: "ships/zephyr/ship.yaml", Type: "file", DownloadURL: "https://raw/ship.yaml"},
				{Name: "zephyr.png", Path: "ships/zephyr/zephyr.png", Type: "file", DownloadURL: "https://raw/zephyr.png"},
				{Name: "extras", Path: "ships/zephyr/extras", Type: "dir"},
				{Name: "zephyr.ship", Path: "ships/zephyr/zephyr.ship", Type: "file", DownloadURL: "https://raw/zephyr.ship"},
			},
		},
		files: map[string][]byte{
			"https://raw/ship.yaml":   []byte("name: Zephyr"),
			"https://raw/zephyr.png":  []byte("png"),
			"https://raw/zephyr.ship": []byte("design"),
		},
	}
}

func TestMaterialize(t *testing.T) {
	ship := newShip(t, "name: Zephyr", ships.Image{})
	src := zephyrSource()
	dest := filepath.Join(t.TempDir(), "downloads")

	dir, err := ship.Materialize(context.Background(), src, dest)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "zephyr"), dir)

	for name, want := range map[string]string{"ship.yaml": "name: Zephyr", "zephyr.png": "png", "zephyr.ship": "design"} {
		got, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, want, string(got))
	}
	assert.NoDirExists(t, filepath.Join(dir, "extras"))
	assert.Equal(t, []string{"https://raw/ship.yaml", "https://raw/zephyr.png", "https://raw/zephyr.ship"}, src.downloads)
}

func TestMaterializeCollisions(t *testing.T) {
	ship := newShip(t, "name: Zephyr", ships.Image{})
	dest := t.TempDir()

	var dirs []string
	for range 3 {
		dir, err := ship.Materialize(context.Background(), zephyrSource(), dest)
		require.NoError(t, err)
		dirs = append(dirs, filepath.Base(dir))
	}
	assert.Equal(t, []string{"zephyr", "zephyr(1)", "zephyr(2)"}, dirs)
}

func TestMaterializeEmptyListing(t *testing.T) {
	ship := newShip(t, "name: Zephyr", ships.Image{})
	dest := filepath.Join(t.TempDir(), "downloads")

	dir, err := ship.Materialize(context.Background(), &fakeSource{}, dest)
	require.NoError(t, err)
	assert.Equal(t, "", dir)
	assert.NoDirExists(t, dest)
}

func TestMaterializeErrors(t *testing.T) {
	t.Run("list failure", func(t *testing.T) {
		ship := newShip(t, "name: Zephyr", ships.Image{})
		_, err := ship.Materialize(context.Background(), &fakeSource{listErr: errors.New("boom")}, t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("download failure", func(t *testing.T) {
		ship := newShip(t, "name: Zephyr", ships.Image{})
		src := zephyrSource()
		delete(src.files, "https://raw/zephyr.png")

		_, err := ship.Materialize(context.Background(), src, t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ships/zephyr/zephyr.png")
	})

	t.Run("no locator", func(t *testing.T) {
		meta, err := ships.ParseMetadata([]byte("name: Nowhere"))
		require.NoError(t, err)
		ship, err := ships.New(meta, "", ships.Image{})
		require.NoError(t, err)

		_, err = ship.Materialize(context.Background(), zephyrSource(), t.TempDir())
		require.Error(t, err)
	})
}
