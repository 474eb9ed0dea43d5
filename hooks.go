package shipyard

import (
	"sync"

	"github.com/agentstation/shipyard/pkg/logging"
)

// SyncFinishedHook is called after every synchronization pass with its result.
type SyncFinishedHook func(result *Result)

// Hooks registers callbacks for client events.
type Hooks interface {
	// OnSyncFinished registers a callback run after each pass
	OnSyncFinished(fn SyncFinishedHook)
}

type hooks struct {
	mu             sync.RWMutex
	onSyncFinished []SyncFinishedHook
}

func newHooks() *hooks {
	return &hooks{}
}

func (h *hooks) OnSyncFinished(fn SyncFinishedHook) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onSyncFinished = append(h.onSyncFinished, fn)
}

// triggerSyncFinished runs hooks in registration order. A panicking hook
// is logged and does not stop the others.
func (h *hooks) triggerSyncFinished(result *Result) {
	h.mu.RLock()
	fns := append([]SyncFinishedHook(nil), h.onSyncFinished...)
	h.mu.RUnlock()

	for _, fn := range fns {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logging.Error().Interface("panic", r).Msg("Sync finished hook panicked")
				}
			}()
			fn(result)
		}()
	}
}
