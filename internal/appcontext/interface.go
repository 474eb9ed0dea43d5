// Package appcontext provides the application context interface shared by
// all shipyard commands.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/shipyard"
)

// Interface defines what commands need from the application. The App in
// cmd/shipyard/app implements it; tests use Mock.
type Interface interface {
	// Client returns the shared catalog client, creating it lazily.
	Client() (shipyard.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// DownloadsDirectory is where download places materialized ships.
	DownloadsDirectory() string

	// Quiet reports whether informational output should be suppressed.
	Quiet() bool

	// NoColor reports whether styled output is disabled.
	NoColor() bool

	Version() string
	Commit() string
	Date() string
	BuiltBy() string
}
