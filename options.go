package pagesim

import "log/slog"

type (
	// Option configures optional behaviour of a [Simulation].
	Option   func(*settings)
	settings struct {
		logger *slog.Logger
		stats  StatsCollector
	}
)

// StatsCollector accumulates statistics during a [Simulation] run.
// The stats package provides a goroutine-safe implementation.
type StatsCollector interface {
	// CollectHits collects references to resident pages.
	CollectHits(count int)
	// CollectMisses collects page faults.
	CollectMisses(count int)
	// CollectEvictions collects pages evicted by the replacement policy.
	CollectEvictions(count int)
}

type noopStatsCollector struct{}

func (noopStatsCollector) CollectHits(int)      {}
func (noopStatsCollector) CollectMisses(int)    {}
func (noopStatsCollector) CollectEvictions(int) {}

// WithLogger sets the logger used to report faults, evictions and resets.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStats sets the collector that receives hit, miss and eviction counts.
func WithStats(collector StatsCollector) Option {
	return func(s *settings) {
		if collector != nil {
			s.stats = collector
		}
	}
}

func newSettings(options []Option) settings {
	s := settings{
		logger: slog.New(slog.DiscardHandler),
		stats:  noopStatsCollector{},
	}
	for _, apply := range options {
		apply(&s)
	}
	return s
}
