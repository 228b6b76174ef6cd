// Package stats collects hit, miss and eviction counts from simulations.
package stats

// Stats are statistics about one or more simulation runs.
type Stats struct {
	hits      uint64
	misses    uint64
	evictions uint64
}

// Hits returns the number of references to resident pages.
func (s Stats) Hits() uint64 {
	return s.hits
}

// Misses returns the number of page faults.
func (s Stats) Misses() uint64 {
	return s.misses
}

// Evictions returns the number of pages evicted by a replacement policy.
// Faults that found a free frame are not evictions.
func (s Stats) Evictions() uint64 {
	return s.evictions
}

// Requests returns the number of references processed.
func (s Stats) Requests() uint64 {
	return s.hits + s.misses
}

// HitRatio returns the ratio of references which were hits.
// It is zero if no references have been processed.
//
// NOTE: hitRatio + missRatio =~ 1.0.
func (s Stats) HitRatio() float64 {
	requests := s.Requests()
	if requests == 0 {
		return 0.0
	}
	return float64(s.hits) / float64(requests)
}

// MissRatio returns the ratio of references which were faults.
// It is zero if no references have been processed.
func (s Stats) MissRatio() float64 {
	requests := s.Requests()
	if requests == 0 {
		return 0.0
	}
	return float64(s.misses) / float64(requests)
}
