package pagesim

import (
	"fmt"

	"github.com/zeebo/xxh3"
)

type (
	// Step records the outcome of a single reference.
	Step[Page comparable] struct {
		// Victim is the page evicted to make room, if Evicted.
		Victim Page
		// Page is the referenced page.
		Page Page
		// Residents are the resident pages after the step,
		// in admission order.
		Residents []Page
		// Index is the position of the reference in the sequence.
		Index int
		// Fault is true if Page was not resident.
		Fault bool
		// Evicted is true if the fault required an eviction.
		Evicted bool
	}
	// Summary describes a completed run.
	Summary[Page comparable] struct {
		// Residents are the pages resident at the end of the run,
		// in admission order.
		Residents []Page
		Faults    int
		Steps     int
		// HitRatio is 1 - Faults/Steps.
		HitRatio float64
	}
)

// Hit reports if the referenced page was already resident.
func (s Step[Page]) Hit() bool { return !s.Fault }

// Evictee returns the evicted page, if any.
func (s Step[Page]) Evictee() (Page, bool) { return s.Victim, s.Evicted }

// Hits returns the number of references that did not fault.
func (s Summary[Page]) Hits() int { return s.Steps - s.Faults }

// Digest returns a fingerprint of the given steps.
// Equal traces produce equal digests, which makes it
// cheap to compare a replay against a previous run.
func Digest[Page comparable](steps []Step[Page]) uint64 {
	var (
		hasher = xxh3.New()
		buffer []byte
	)
	for _, step := range steps {
		buffer = fmt.Appendf(buffer[:0],
			"%d|%v|%t|%t|%v|%v;",
			step.Index, step.Page, step.Fault,
			step.Evicted, step.Victim, step.Residents,
		)
		hasher.Write(buffer)
	}
	return hasher.Sum64()
}
