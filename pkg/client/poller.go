package client

import (
	"context"
	"sync"
	"time"
)

// Poller re-runs a fetch on a fixed interval, the way the dashboard view
// refreshes its notifications. A single-flight guard skips a tick while the
// previous run is still in flight, so a slow response never overlaps the
// next one. Run stops when the context is cancelled.
type Poller struct {
	interval time.Duration
	fn       func(ctx context.Context)

	mu       sync.Mutex
	inFlight bool
	skipped  int
}

func NewPoller(interval time.Duration, fn func(ctx context.Context)) *Poller {
	return &Poller{interval: interval, fn: fn}
}

// Run fires fn immediately, then on every tick, until ctx is cancelled. It
// blocks; run it in a goroutine.
func (p *Poller) Run(ctx context.Context) {
	p.tick(ctx)

	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.tick(ctx)
		}
	}
}

// tick runs fn unless a previous run is still in flight.
func (p *Poller) tick(ctx context.Context) {
	p.mu.Lock()
	if p.inFlight {
		p.skipped++
		p.mu.Unlock()
		return
	}
	p.inFlight = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.inFlight = false
		p.mu.Unlock()
	}()
	p.fn(ctx)
}

// Skipped returns how many ticks were coalesced into an in-flight run.
func (p *Poller) Skipped() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.skipped
}
