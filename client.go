// Package shipyard keeps a catalog of ships published in GitHub
// repositories. A Client walks each repository's ships/ directory, reads
// every ship folder's ship.yaml and preview image, and swaps the result in
// as a read-only snapshot.
//
// Example usage:
//
//	client, err := shipyard.New(
//	    shipyard.WithRepositories("MaxWasUnavailable/HighfleetShipRepository"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result := client.Sync(ctx)
//	if result.RateLimited {
//	    log.Println("GitHub rate limit hit, wait a few minutes")
//	}
//
//	for _, ship := range client.Catalog().List() {
//	    fmt.Println(ship.Name())
//	}
//
//	// Or refresh in the background and get notified.
//	client.OnSyncFinished(func(r *shipyard.Result) { fmt.Println(r.Summary()) })
//	client.Trigger(ctx)
package shipyard

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/agentstation/shipyard/internal/github"
	"github.com/agentstation/shipyard/internal/runner"
	"github.com/agentstation/shipyard/pkg/errors"
	"github.com/agentstation/shipyard/pkg/ships"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Catalog provides access to the latest completed snapshot.
type Catalog interface {
	Catalog() ships.Catalog
}

// Syncer runs synchronization passes.
type Syncer interface {
	// Sync runs one pass on the calling goroutine. It never fails; problems
	// are reported in the Result.
	Sync(ctx context.Context) *Result

	// Trigger starts a pass in the background unless one is already
	// running. It reports whether a pass was started.
	Trigger(ctx context.Context) bool

	// Busy reports whether a triggered pass is running.
	Busy() bool

	// Wait blocks until the triggered pass, if any, is done.
	Wait()
}

// Downloader writes ships to local disk.
type Downloader interface {
	Materialize(ctx context.Context, ship *ships.Ship, dest string) (string, error)
}

// Client manages a ship catalog with background refresh and event hooks.
type Client interface {
	Catalog
	Syncer
	Downloader
	AutoUpdater
	Hooks

	// Repositories returns the configured repository ids in sync order.
	Repositories() []string
}

type client struct {
	options *options
	github  *github.Client
	runner  runner.Runner
	hooks   *hooks

	mu      sync.RWMutex
	catalog ships.Catalog

	// auto update state
	autoMu       sync.Mutex
	updateTicker *time.Ticker
	stopCh       chan struct{}
	updateCancel context.CancelFunc
}

// New creates a Client. The catalog starts empty until the first pass.
func New(opts ...Option) (Client, error) {
	o, err := defaults().apply(opts...)
	if err != nil {
		return nil, errors.NewConfigError("client", "invalid option", err)
	}

	return &client{
		options: o,
		github:  github.NewClient(o.apiURL, httpClient(o)),
		hooks:   newHooks(),
	}, nil
}

func httpClient(o *options) *http.Client {
	if o.httpClient == nil {
		return &http.Client{Timeout: o.httpTimeout}
	}
	c := *o.httpClient
	if c.Timeout == 0 {
		c.Timeout = o.httpTimeout
	}
	return &c
}

// Catalog returns the latest completed snapshot.
func (c *client) Catalog() ships.Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog
}

func (c *client) setCatalog(cat ships.Catalog) {
	c.mu.Lock()
	c.catalog = cat
	c.mu.Unlock()
}

func (c *client) Repositories() []string {
	return append([]string(nil), c.options.repositories...)
}

func (c *client) OnSyncFinished(fn SyncFinishedHook) {
	c.hooks.OnSyncFinished(fn)
}

// Materialize downloads ship into a new folder under dest.
func (c *client) Materialize(ctx context.Context, ship *ships.Ship, dest string) (string, error) {
	if ship == nil {
		return "", &errors.ValidationError{Field: "ship", Message: "cannot be nil"}
	}
	return ship.Materialize(ctx, c.github, dest)
}
