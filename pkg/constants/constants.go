// Package constants provides shared constants used throughout the shipyard codebase.
// This includes timeouts, limits, file permissions, and the well-known remote
// locations that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for a single GitHub API call or file download
	DefaultHTTPTimeout = 30 * time.Second

	// SyncTimeout bounds one full synchronization pass across all repositories
	SyncTimeout = 10 * time.Minute

	// DefaultUpdateInterval is the default interval between automatic catalog refreshes
	DefaultUpdateInterval = 1 * time.Hour

	// ShutdownTimeout is how long the CLI waits for an in-flight pass on exit
	ShutdownTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants define various limits and capacities
const (
	// DefaultConcurrency is the number of ship folders fetched at once within a repository
	DefaultConcurrency = 4

	// MaxConcurrency caps folder fan-out so anonymous clients stay under GitHub's secondary limits
	MaxConcurrency = 16

	// MaxMetadataSize is the largest ship.yaml accepted, in bytes
	MaxMetadataSize = 1 << 20

	// MaxDescriptionWidth is the description column width in table output
	MaxDescriptionWidth = 80
)

// GitHub and repository layout constants
const (
	// GitHubAPIURL is the public GitHub REST API endpoint
	GitHubAPIURL = "https://api.github.com"

	// GitHubAcceptHeader is the media type requested from the GitHub API
	GitHubAcceptHeader = "application/vnd.github+json"

	// UserAgent is sent with every request; GitHub rejects requests without one
	UserAgent = "shipyard"

	// DefaultRepositoryID is used when no repository ids are configured
	DefaultRepositoryID = "MaxWasUnavailable/HighfleetShipRepository"

	// ShipsPath is the directory inside a repository that holds one folder per ship
	ShipsPath = "ships"

	// MetadataFileName is the exact name of a ship's metadata file
	MetadataFileName = "ship.yaml"

	// ReadmeFileName is the file written by the readme generator
	ReadmeFileName = "readme.md"
)

// Path constants
const (
	// DefaultDataPath is the application's working data directory
	DefaultDataPath = "./data"

	// DefaultConfigPath is the default configuration file
	DefaultConfigPath = "./data/config.yaml"

	// DefaultDownloadsPath is where ships are materialized unless configured otherwise
	DefaultDownloadsPath = "./data/downloads"
)

// Error messages
const (
	// ErrMsgRateLimited is shown to the user when GitHub refuses anonymous requests
	ErrMsgRateLimited = "Error 403. GitHub has rate limited you for refreshing too often. Please wait a couple of minutes before trying again."
)
