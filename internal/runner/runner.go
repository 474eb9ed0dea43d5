// Package runner runs at most one background task at a time. Submissions
// made while a task is running are dropped, not queued.
package runner

import (
	"context"
	"sync"
	"sync/atomic"
)

// Runner admits a single in-flight task.
type Runner struct {
	busy atomic.Bool
	wg   sync.WaitGroup
}

// TryGo starts fn in a new goroutine unless a task is already running.
// It reports whether fn was started. A running task is never cancelled by
// the runner; fn should watch ctx itself.
func (r *Runner) TryGo(ctx context.Context, fn func(context.Context)) bool {
	if !r.busy.CompareAndSwap(false, true) {
		return false
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer r.busy.Store(false)
		fn(ctx)
	}()
	return true
}

// Busy reports whether a task is running.
func (r *Runner) Busy() bool {
	return r.busy.Load()
}

// Wait blocks until the running task, if any, returns.
func (r *Runner) Wait() {
	r.wg.Wait()
}
