package readme

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/shipyard/internal/appcontext"
	"github.com/agentstation/shipyard/pkg/errors"
)

func writeShip(t *testing.T, dir, name, yaml string) string {
	t.Helper()
	folder := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(folder, 0o755))
	path := filepath.Join(folder, "ship.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(&appcontext.Mock{})
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestReadmeDirectory(t *testing.T) {
	dir := t.TempDir()
	writeShip(t, dir, "zephyr", "name: Zephyr\ntags: [carrier]\n")
	writeShip(t, dir, "hermes", "name: Hermes\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "notes"), 0o755))

	stdout, err := run(t, dir)
	require.NoError(t, err)

	for _, name := range []string{"zephyr", "hermes"} {
		path := filepath.Join(dir, name, "readme.md")
		assert.FileExists(t, path)
		assert.Contains(t, stdout, "Wrote "+path)
	}
	assert.NoFileExists(t, filepath.Join(dir, "notes", "readme.md"))
}

func TestReadmeSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeShip(t, dir, "zephyr", "name: Zephyr\n")

	_, err := run(t, path)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "zephyr", "readme.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Zephyr\n")
}

func TestReadmeNothingToDo(t *testing.T) {
	stdout, err := run(t, t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, stdout, "No ship.yaml found")
}

func TestReadmeRejectsOtherFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := run(t, path)
	assert.True(t, errors.IsValidationError(err))
}

func TestReadmeMissingPath(t *testing.T) {
	_, err := run(t, filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestReadmeReportsBrokenShips(t *testing.T) {
	dir := t.TempDir()
	writeShip(t, dir, "good", "name: Good\n")
	writeShip(t, dir, "broken", "")

	stdout, err := run(t, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Contains(t, stdout, filepath.Join(dir, "good", "readme.md"))
}
