package stats_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	pagesim "github.com/djdv/go-pagesim"
	"github.com/djdv/go-pagesim/stats"
)

func TestCounter_Basic(t *testing.T) {
	t.Parallel()

	c := stats.NewCounter()
	c.CollectHits(1)
	c.CollectMisses(3)
	c.CollectEvictions(2)

	s := c.Snapshot()
	require.Equal(t, uint64(1), s.Hits())
	require.Equal(t, uint64(3), s.Misses())
	require.Equal(t, uint64(2), s.Evictions())
	require.Equal(t, uint64(4), s.Requests())
	require.InDelta(t, 0.25, s.HitRatio(), 1e-9)
	require.InDelta(t, 0.75, s.MissRatio(), 1e-9)

	c.Reset()
	require.Equal(t, stats.Stats{}, c.Stats())
}

func TestCounter_Empty(t *testing.T) {
	t.Parallel()

	s := stats.NewCounter().Snapshot()
	require.Zero(t, s.Requests())
	require.Zero(t, s.HitRatio())
	require.Zero(t, s.MissRatio())
}

func TestCounter_Concurrent(t *testing.T) {
	t.Parallel()

	const (
		goroutines = 8
		iterations = 1000
	)
	var (
		c  = stats.NewCounter()
		wg sync.WaitGroup
	)
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range iterations {
				c.CollectHits(1)
				c.CollectMisses(1)
			}
		}()
	}
	wg.Wait()

	s := c.Snapshot()
	require.Equal(t, uint64(goroutines*iterations), s.Hits())
	require.Equal(t, uint64(goroutines*iterations), s.Misses())
}

func TestCounter_Simulation(t *testing.T) {
	t.Parallel()

	var (
		c        = stats.NewCounter()
		sequence = []int{1, 2, 3, 4, 1, 2, 5, 1, 2, 3}
	)
	sim, err := pagesim.New(3, pagesim.FIFO, sequence, pagesim.WithStats(c))
	require.NoError(t, err)
	_, summary, err := sim.Run()
	require.NoError(t, err)

	s := c.Snapshot()
	require.Equal(t, uint64(summary.Faults), s.Misses())
	require.Equal(t, uint64(summary.Hits()), s.Hits())
	require.Equal(t, uint64(summary.Faults-sim.Capacity()), s.Evictions())
	require.InDelta(t, summary.HitRatio, s.HitRatio(), 1e-9)
}
