// Package search runs the debounced text search. Each request bumps a
// generation counter and cancels the pending one; only a request that is still
// the latest when it completes commits its term.
package search

import (
	"context"
	"sync"
	"time"

	"github.com/avstrong/hotelsearch/internal/logger"
)

const DefaultDelay = 300 * time.Millisecond

// Resolver simulates or performs search latency after the debounce delay. It
// must honour ctx cancellation to release resources early; a result produced
// after cancellation is discarded either way.
type Resolver func(ctx context.Context, term string) error

type Config struct {
	Delay    time.Duration
	Resolver Resolver
	L        *logger.Logger
}

type Debouncer struct {
	delay    time.Duration
	resolver Resolver
	l        *logger.Logger

	mu         sync.Mutex
	generation uint64
	requested  string
	applied    string
	cancel     context.CancelFunc
	closed     bool

	wg sync.WaitGroup
}

func New(conf Config) *Debouncer {
	l := conf.L
	if l == nil {
		l = logger.Discard()
	}

	return &Debouncer{
		delay:    conf.Delay,
		resolver: conf.Resolver,
		l:        l,
	}
}

// Submit schedules term and returns its generation. Values carried by ctx are
// kept but its cancellation is not: a search outlives the request that typed it.
func (d *Debouncer) Submit(ctx context.Context, term string) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.generation++
	gen := d.generation
	d.requested = term

	d.cancelPendingLocked()

	if d.closed {
		return gen
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	d.cancel = cancel

	d.wg.Add(1)

	go d.run(runCtx, gen, term)

	return gen
}

// Reset drops any pending request and sets both terms at once.
func (d *Debouncer) Reset(term string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.generation++
	d.cancelPendingLocked()
	d.requested = term
	d.applied = term
}

func (d *Debouncer) Applied() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.applied
}

func (d *Debouncer) Requested() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.requested
}

func (d *Debouncer) Generation() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.generation
}

// Pending reports whether the requested term has not been applied yet.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.requested != d.applied
}

// Wait blocks until every scheduled request has finished or been discarded.
func (d *Debouncer) Wait() {
	d.wg.Wait()
}

func (d *Debouncer) Close() {
	d.mu.Lock()
	d.closed = true
	d.cancelPendingLocked()
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Debouncer) cancelPendingLocked() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

func (d *Debouncer) run(ctx context.Context, gen uint64, term string) {
	defer d.wg.Done()

	timer := time.NewTimer(d.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	if d.resolver != nil {
		if err := d.resolver(ctx, term); err != nil && ctx.Err() == nil {
			d.l.LogWarnf("search resolver failed for generation %d: %v", gen, err)
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if gen != d.generation || ctx.Err() != nil {
		d.l.LogDebugf("discarding stale search generation %d", gen)

		return
	}

	d.applied = term
	d.cancelPendingLocked()
}
