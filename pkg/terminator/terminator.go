package terminator

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Terminator is the driver's single cooperative-cancellation signal,
// shared across phases. Each phase transition installs a fresh deadline
// via NewTimeout; Kill additionally sets an independent out-of-band flag
// (e.g. a SIGINT handler) that a Separator polls through ShouldStop.
type Terminator struct {
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	killed atomic.Bool
}

// New creates a Terminator with no deadline installed; callers must call
// NewTimeout before starting a phase.
func New() *Terminator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Terminator{ctx: ctx, cancel: cancel}
}

// NewTimeout cancels any previously installed deadline and installs a
// fresh one of duration d, rooted in a clean background context so one
// phase's expiry never leaks into the next.
func (t *Terminator) NewTimeout(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
	}
	t.ctx, t.cancel = context.WithTimeout(context.Background(), d)
}

// Context returns the terminator's current context, live for the
// currently installed deadline. Callers should re-fetch it after each
// NewTimeout rather than caching it across phases.
func (t *Terminator) Context() context.Context {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ctx
}

// Kill sets the out-of-band termination flag. Idempotent.
func (t *Terminator) Kill() {
	t.killed.Store(true)
}

// IsKill reports whether Kill has been called.
func (t *Terminator) IsKill() bool {
	return t.killed.Load()
}

// ShouldStop is the single check a Separator performs (every 32
// candidates, and before each item copy or compaction move): true if the
// current deadline has elapsed or Kill has been called.
func (t *Terminator) ShouldStop() bool {
	if t.IsKill() {
		return true
	}
	select {
	case <-t.Context().Done():
		return true
	default:
		return false
	}
}

// Stop cancels the current deadline immediately, without setting the kill
// flag. Used at clean shutdown to release the underlying context.
func (t *Terminator) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
	}
}
