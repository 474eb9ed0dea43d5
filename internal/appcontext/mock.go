package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/shipyard"
)

// Mock provides a mock implementation of Interface for testing.
// Function fields left nil fall back to a zero value or a sensible default.
type Mock struct {
	ClientFunc func() (shipyard.Client, error)
	LoggerFunc func() *zerolog.Logger

	Format       string
	DownloadsDir string
	QuietOutput  bool
}

// Client returns a client using the mock function or nil.
func (m *Mock) Client() (shipyard.Client, error) {
	if m.ClientFunc != nil {
		return m.ClientFunc()
	}
	return nil, nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the configured format.
func (m *Mock) OutputFormat() string { return m.Format }

// DownloadsDirectory returns the configured downloads directory.
func (m *Mock) DownloadsDirectory() string { return m.DownloadsDir }

// Quiet returns the configured quiet flag.
func (m *Mock) Quiet() bool { return m.QuietOutput }

// NoColor returns true so command output in tests is plain text.
func (m *Mock) NoColor() bool { return true }

// Version returns "dev".
func (m *Mock) Version() string { return "dev" }

// Commit returns "unknown".
func (m *Mock) Commit() string { return "unknown" }

// Date returns "unknown".
func (m *Mock) Date() string { return "unknown" }

// BuiltBy returns "test".
func (m *Mock) BuiltBy() string { return "test" }

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
