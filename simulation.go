package pagesim

import (
	"context"
	"iter"
	"log/slog"
	"slices"
)

// Simulation steps a [Policy] through a reference sequence.
// Concurrent access must be guarded by the caller.
// Constructed by [New].
type Simulation[Page comparable] struct {
	selector         victimSelector[Page]
	frames           *frames[Page]
	logger           *slog.Logger
	stats            StatsCollector
	sequence         []Page
	position, faults int
	policy           Policy
}

// MinimumCapacity defines the lowest frame count supported by [New].
const MinimumCapacity = 1

// New creates a [Simulation] of policy over sequence,
// with capacity page frames.
// The sequence is copied; the caller may reuse it.
func New[Page comparable](capacity int, policy Policy, sequence []Page, options ...Option) (*Simulation[Page], error) {
	if capacity < MinimumCapacity {
		return nil, minCapacityError(capacity)
	}
	if !policy.valid() {
		return nil, invalidPolicyError(policy)
	}
	settings := newSettings(options)
	return &Simulation[Page]{
		selector: newSelector[Page](policy),
		frames:   newFrames[Page](capacity, policy),
		logger: settings.logger.With(
			slog.String("policy", policy.String()),
			slog.Int("capacity", capacity),
		),
		stats:    settings.stats,
		sequence: slices.Clone(sequence),
		policy:   policy,
	}, nil
}

// Advance processes the next reference of the sequence.
// Once every reference has been processed, it returns
// an error wrapping [ErrOutOfSequence] and the state is left unchanged.
func (s *Simulation[Page]) Advance() (Step[Page], error) {
	if s.Done() {
		return Step[Page]{}, exhaustedError(len(s.sequence))
	}
	var (
		index = s.position
		page  = s.sequence[index]
		step  = Step[Page]{
			Index: index,
			Page:  page,
		}
	)
	if s.frames.contains(page) {
		s.stats.CollectHits(1)
	} else {
		step.Fault = true
		if s.frames.full() {
			step.Victim = s.selector.selectVictim(
				s.frames, s.sequence[index+1:],
			)
			step.Evicted = true
			s.frames.evict(step.Victim)
			s.stats.CollectEvictions(1)
		}
		s.frames.admit(page, index)
		s.faults++
		s.stats.CollectMisses(1)
		s.logFault(step)
	}
	s.frames.touch(page, index)
	s.position++
	step.Residents = s.frames.snapshot()
	return step, nil
}

func (s *Simulation[Page]) logFault(step Step[Page]) {
	const message = "page fault"
	attrs := []slog.Attr{
		slog.Int("step", step.Index),
		slog.Any("page", step.Page),
	}
	if step.Evicted {
		attrs = append(attrs, slog.Any("victim", step.Victim))
	}
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, message, attrs...)
}

// Steps returns an iterator that advances through
// the remaining references of the sequence.
func (s *Simulation[Page]) Steps() iter.Seq[Step[Page]] {
	return func(yield func(Step[Page]) bool) {
		for !s.Done() {
			step, err := s.Advance()
			if err != nil || !yield(step) {
				return
			}
		}
	}
}

// Run advances through the remaining references
// and returns their steps along with the run's [Summary].
func (s *Simulation[Page]) Run() ([]Step[Page], Summary[Page], error) {
	steps := make([]Step[Page], 0, s.Remaining())
	for step := range s.Steps() {
		steps = append(steps, step)
	}
	summary, err := s.Summary()
	return steps, summary, err
}

// Summary describes the finished run.
// It fails with [ErrInvalidConfiguration] if the sequence is empty,
// since the hit ratio is undefined without references,
// and with [ErrOutOfSequence] if references remain to be processed.
func (s *Simulation[Page]) Summary() (Summary[Page], error) {
	steps := len(s.sequence)
	if steps == 0 {
		return Summary[Page]{}, emptySequenceError()
	}
	if !s.Done() {
		return Summary[Page]{}, incompleteError(s.position, steps)
	}
	return Summary[Page]{
		Residents: s.frames.snapshot(),
		Faults:    s.faults,
		Steps:     steps,
		HitRatio:  1 - float64(s.faults)/float64(steps),
	}, nil
}

// Reset discards all resident pages and counters
// so the sequence can be replayed from the start.
func (s *Simulation[Page]) Reset() {
	s.frames.reset()
	s.position = 0
	s.faults = 0
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "simulation reset")
}

// Done reports if every reference has been processed.
func (s *Simulation[_]) Done() bool { return s.position == len(s.sequence) }

// Position returns the index of the next reference to be processed.
func (s *Simulation[_]) Position() int { return s.position }

// Remaining returns the number of references left to process.
func (s *Simulation[_]) Remaining() int { return len(s.sequence) - s.position }

// Faults returns the number of page faults so far.
func (s *Simulation[_]) Faults() int { return s.faults }

// Capacity returns the number of page frames.
func (s *Simulation[_]) Capacity() int { return s.frames.capacity }

// Policy returns the replacement policy.
func (s *Simulation[_]) Policy() Policy { return s.policy }

// Len returns the number of resident pages.
func (s *Simulation[_]) Len() int { return s.frames.len() }

// Residents returns an iterator over the resident pages, in admission order.
func (s *Simulation[Page]) Residents() iter.Seq[Page] { return s.frames.pages() }
