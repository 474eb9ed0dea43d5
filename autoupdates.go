package shipyard

import (
	"context"
	"time"

	"github.com/agentstation/shipyard/pkg/constants"
	"github.com/agentstation/shipyard/pkg/errors"
	"github.com/agentstation/shipyard/pkg/logging"
)

// Compile-time interface check to ensure proper implementation.
var _ AutoUpdater = (*client)(nil)

// AutoUpdater provides controls for automatic catalog updates.
type AutoUpdater interface {
	// AutoUpdatesOn begins triggering a pass every configured interval
	AutoUpdatesOn() error

	// AutoUpdatesOff stops automatic updates. A pass already running finishes.
	AutoUpdatesOff() error
}

// Trigger starts a pass in the background. Cancelling ctx after the pass has
// started does not stop it; the pass is bounded only by constants.SyncTimeout
// and reports through the OnSyncFinished hooks.
func (c *client) Trigger(ctx context.Context) bool {
	if ctx == nil {
		ctx = context.Background()
	}
	return c.runner.TryGo(context.WithoutCancel(ctx), func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, constants.SyncTimeout)
		defer cancel()
		c.Sync(ctx)
	})
}

func (c *client) Busy() bool {
	return c.runner.Busy()
}

func (c *client) Wait() {
	c.runner.Wait()
}

// AutoUpdatesOn begins automatic updates. Ticks that land while a pass is
// still running are dropped.
func (c *client) AutoUpdatesOn() error {
	if c.options.autoUpdateInterval <= 0 {
		return &errors.ValidationError{
			Field:   "autoUpdateInterval",
			Value:   c.options.autoUpdateInterval,
			Message: "update interval must be positive",
		}
	}

	if err := c.AutoUpdatesOff(); err != nil {
		return err
	}

	c.autoMu.Lock()
	defer c.autoMu.Unlock()

	ticker := time.NewTicker(c.options.autoUpdateInterval)
	stopCh := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())
	c.updateTicker, c.stopCh, c.updateCancel = ticker, stopCh, cancel

	go func() {
		for {
			select {
			case <-ticker.C:
				if !c.Trigger(ctx) {
					logging.Debug().Msg("Previous pass still running, auto-update tick dropped")
				}
			case <-ctx.Done():
				return
			case <-stopCh:
				return
			}
		}
	}()

	logging.Debug().Dur("interval", c.options.autoUpdateInterval).Msg("Auto-updates enabled")
	return nil
}

// AutoUpdatesOff stops automatic updates. It does not wait for a running
// pass; use Wait for that.
func (c *client) AutoUpdatesOff() error {
	c.autoMu.Lock()
	defer c.autoMu.Unlock()

	if c.updateTicker != nil {
		c.updateTicker.Stop()
		c.updateTicker = nil
	}
	if c.updateCancel != nil {
		c.updateCancel()
		c.updateCancel = nil
	}
	if c.stopCh != nil {
		close(c.stopCh)
		c.stopCh = nil
	}
	return nil
}
