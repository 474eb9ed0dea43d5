// Package app provides the application context and dependency management
// for the shipyard CLI. It centralizes configuration, logging, and the
// lifecycle of the catalog client.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/shipyard"
	"github.com/agentstation/shipyard/internal/appcontext"
	"github.com/agentstation/shipyard/pkg/errors"
)

var _ appcontext.Interface = (*App)(nil)

// App represents the shipyard application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Client instance (lazy-initialized, singleton)
	mu     sync.RWMutex
	client shipyard.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the --format value, possibly empty.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// DownloadsDirectory returns the configured downloads root.
func (a *App) DownloadsDirectory() string {
	return a.config.DownloadsDirectory
}

// Quiet reports whether -q was given.
func (a *App) Quiet() bool {
	return a.config.Quiet
}

// NoColor reports whether styled output is disabled.
func (a *App) NoColor() bool {
	return a.config.NoColor
}

// Client returns the catalog client, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Client() (shipyard.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	c, err := shipyard.New(a.clientOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", "", err)
	}

	a.client = c
	return c, nil
}

// Shutdown stops auto-updates and waits for an in-flight pass, giving up
// when ctx is done.
func (a *App) Shutdown(ctx context.Context) error {
	a.mu.RLock()
	c := a.client
	a.mu.RUnlock()

	if c == nil {
		return nil
	}

	if err := c.AutoUpdatesOff(); err != nil {
		a.logger.Error().Err(err).Msg("Failed to stop auto-updates during shutdown")
	}

	done := make(chan struct{})
	go func() {
		c.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.WrapResource("wait for", "sync pass", "", ctx.Err())
	}
}

// clientOptions constructs client options from the app configuration.
func (a *App) clientOptions() []shipyard.Option {
	opts := []shipyard.Option{
		shipyard.WithRepositories(a.config.RepositoryIDs...),
	}

	if a.config.APIURL != "" {
		opts = append(opts, shipyard.WithAPIURL(a.config.APIURL))
	}
	if a.config.HTTPTimeout > 0 {
		opts = append(opts, shipyard.WithHTTPTimeout(a.config.HTTPTimeout))
	}
	if a.config.Concurrency > 0 {
		opts = append(opts, shipyard.WithConcurrency(a.config.Concurrency))
	}
	if a.config.AutoUpdateInterval > 0 {
		opts = append(opts, shipyard.WithAutoUpdateInterval(a.config.AutoUpdateInterval))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom client (useful for testing).
func WithClient(c shipyard.Client) Option {
	return func(a *App) error {
		a.client = c
		return nil
	}
}
