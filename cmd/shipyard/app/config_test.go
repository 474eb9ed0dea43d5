package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/shipyard/pkg/constants"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// TestLoadConfigDefaults verifies that a missing default file is not an error.
func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SHIPYARD_CONFIG", "")
	t.Setenv("LOG_FORMAT", "")
	t.Chdir(t.TempDir())

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultDownloadsPath, config.DownloadsDirectory)
	assert.Equal(t, []string{}, config.RepositoryIDs)
	assert.Equal(t, constants.GitHubAPIURL, config.APIURL)
	assert.Equal(t, constants.DefaultHTTPTimeout, config.HTTPTimeout)
	assert.Equal(t, constants.DefaultConcurrency, config.Concurrency)
	assert.Equal(t, constants.DefaultUpdateInterval, config.AutoUpdateInterval)
	assert.Equal(t, "auto", config.LogFormat)
	assert.Empty(t, config.ConfigFile)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `downloads_directory: ./ships
repository_ids:
  - org/one
  - org/two
http_timeout: 5s
concurrency: 2
auto_update_interval: 15m
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "./ships", config.DownloadsDirectory)
	assert.Equal(t, []string{"org/one", "org/two"}, config.RepositoryIDs)
	assert.Equal(t, 5*time.Second, config.HTTPTimeout)
	assert.Equal(t, 2, config.Concurrency)
	assert.Equal(t, 15*time.Minute, config.AutoUpdateInterval)
	assert.Equal(t, path, config.ConfigFile)
}

func TestLoadConfigNullRepositories(t *testing.T) {
	path := writeConfig(t, "downloads_directory: ./ships\nrepository_ids:\n")

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.NotNil(t, config.RepositoryIDs)
	assert.Empty(t, config.RepositoryIDs)
}

func TestLoadConfigDefaultLocation(t *testing.T) {
	t.Setenv("SHIPYARD_CONFIG", "")
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "config.yaml"),
		[]byte("repository_ids: [org/repo]\n"), 0o644))
	t.Chdir(dir)

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, []string{"org/repo"}, config.RepositoryIDs)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	path := writeConfig(t, "concurrency: 2\n")
	t.Setenv("SHIPYARD_CONFIG", path)
	t.Setenv("SHIPYARD_DOWNLOADS_DIRECTORY", "/tmp/ships")
	t.Setenv("SHIPYARD_HTTP_TIMEOUT", "10s")

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, path, config.ConfigFile)
	assert.Equal(t, 2, config.Concurrency)
	assert.Equal(t, "/tmp/ships", config.DownloadsDirectory)
	assert.Equal(t, 10*time.Second, config.HTTPTimeout)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, "repository_ids: [unclosed\n")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigLogEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	config, err := LoadConfig(writeConfig(t, "concurrency: 4\n"))
	require.NoError(t, err)

	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "json", config.LogFormat)
}

func TestUpdateFromFlags(t *testing.T) {
	config := &Config{Format: "yaml", LogLevel: "warn"}

	config.UpdateFromFlags(true, false, true, "", "")
	assert.True(t, config.Verbose)
	assert.True(t, config.NoColor)
	assert.Equal(t, "yaml", config.Format)
	assert.Equal(t, "warn", config.LogLevel)

	config.UpdateFromFlags(false, true, false, "json", "error")
	assert.True(t, config.Quiet)
	assert.True(t, config.NoColor)
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "error", config.LogLevel)
}
