package constants_test

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/agentstation/shipyard/pkg/constants"
)

// Example demonstrates using constants for common operations
func Example() {
	dir := filepath.Join(os.TempDir(), "shipyard-example")
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, constants.MetadataFileName)
	if err := os.WriteFile(file, []byte("name: Zephyr"), constants.FilePermissions); err != nil {
		panic(err)
	}

	fmt.Printf("Created dir with %o permissions\n", constants.DirPermissions)
	fmt.Printf("Created file with %o permissions\n", constants.FilePermissions)
	// Output:
	// Created dir with 755 permissions
	// Created file with 644 permissions
}

// Example_timeouts demonstrates timeout constants
func Example_timeouts() {
	client := &http.Client{
		Timeout: constants.DefaultHTTPTimeout,
	}
	fmt.Printf("HTTP timeout: %v\n", client.Timeout)
	// Output:
	// HTTP timeout: 30s
}

// Example_gitHubConstants shows GitHub-specific constants
func Example_gitHubConstants() {
	fmt.Printf("API: %s\n", constants.GitHubAPIURL)
	fmt.Printf("Default repository: %s\n", constants.DefaultRepositoryID)
	fmt.Printf("Ships live under: %s/<folder>/%s\n", constants.ShipsPath, constants.MetadataFileName)
	// Output:
	// API: https://api.github.com
	// Default repository: MaxWasUnavailable/HighfleetShipRepository
	// Ships live under: ships/<folder>/ship.yaml
}
