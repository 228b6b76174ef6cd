// Package prometheus exposes simulation statistics as Prometheus metrics.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/djdv/go-pagesim/stats"
)

// StatsProvider provides simulation statistics.
type StatsProvider interface {
	Stats() stats.Stats
}

// Collector collects statistics from a provider and exposes them to Prometheus.
type Collector struct {
	provider      StatsProvider
	hitsDesc      *prometheus.Desc
	faultsDesc    *prometheus.Desc
	evictionsDesc *prometheus.Desc
	hitRatioDesc  *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a new collector for the given statistics provider.
// Metric names are prefixed with the given namespace and subsystem,
// i.e "{namespace}_{subsystem}_{metric}".
// Supported metrics:
// - hits
// - faults
// - evictions
// - hit_ratio
func NewCollector(namespace, subsystem string, provider StatsProvider) *Collector {
	return &Collector{
		provider: provider,
		hitsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "hits"),
			"Number of references to resident pages.",
			nil, nil,
		),
		faultsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "faults"),
			"Number of page faults.",
			nil, nil,
		),
		evictionsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "evictions"),
			"Number of pages evicted by the replacement policy.",
			nil, nil,
		),
		hitRatioDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "hit_ratio"),
			"Ratio of references which were hits.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- c.hitsDesc
	descs <- c.faultsDesc
	descs <- c.evictionsDesc
	descs <- c.hitRatioDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(metrics chan<- prometheus.Metric) {
	s := c.provider.Stats()
	metrics <- prometheus.MustNewConstMetric(
		c.hitsDesc, prometheus.CounterValue, float64(s.Hits()),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.faultsDesc, prometheus.CounterValue, float64(s.Misses()),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.evictionsDesc, prometheus.CounterValue, float64(s.Evictions()),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.hitRatioDesc, prometheus.GaugeValue, s.HitRatio(),
	)
}
