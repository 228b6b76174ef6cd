package stats

import (
	"sync/atomic"

	pagesim "github.com/djdv/go-pagesim"
)

var _ pagesim.StatsCollector = (*Counter)(nil)

// Counter is a goroutine-safe [pagesim.StatsCollector].
// A single Counter may be shared by several simulations
// to aggregate their statistics.
type Counter struct {
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// NewCounter constructs a Counter instance with all counts initialized to zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Snapshot returns a snapshot of this counter's values. Note that this may be an inconsistent view, as it
// may be interleaved with update operations.
func (c *Counter) Snapshot() Stats {
	return Stats{
		hits:      c.hits.Load(),
		misses:    c.misses.Load(),
		evictions: c.evictions.Load(),
	}
}

// Stats is [Counter.Snapshot]; it lets a Counter serve as a stats provider.
func (c *Counter) Stats() Stats {
	return c.Snapshot()
}

// CollectHits collects references to resident pages.
func (c *Counter) CollectHits(count int) {
	//nolint:gosec // counts are never negative
	c.hits.Add(uint64(count))
}

// CollectMisses collects page faults.
func (c *Counter) CollectMisses(count int) {
	//nolint:gosec // counts are never negative
	c.misses.Add(uint64(count))
}

// CollectEvictions collects pages evicted by a replacement policy.
func (c *Counter) CollectEvictions(count int) {
	//nolint:gosec // counts are never negative
	c.evictions.Add(uint64(count))
}

// Reset sets all counts to zero.
func (c *Counter) Reset() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
