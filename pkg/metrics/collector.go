// Package metrics exports adapter activity to Prometheus.
package metrics

import (
	"maps"
	"slices"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hyp3rd/svcadapters"
	"github.com/hyp3rd/svcadapters/pkg/adapter/logservice"
)

const (
	namespace = "svcadapters"
	subsystem = "logservice"
)

// StatsProvider is implemented by logservice.Adapter.
type StatsProvider interface {
	Stats() logservice.Stats
}

// AdapterCollector reports the buffering state of named log service adapters.
type AdapterCollector struct {
	mu       sync.RWMutex
	adapters map[string]StatsProvider

	pendingDesc   *prometheus.Desc
	forwardedDesc *prometheus.Desc
	replayedDesc  *prometheus.Desc
	attachedDesc  *prometheus.Desc
}

// Ensure AdapterCollector implements the prometheus.Collector interface.
var _ prometheus.Collector = (*AdapterCollector)(nil)

// NewAdapterCollector creates an empty collector.
func NewAdapterCollector() *AdapterCollector {
	labels := []string{"adapter"}

	return &AdapterCollector{
		adapters: make(map[string]StatsProvider),
		pendingDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "pending_records"),
			"Records buffered while no log service is attached",
			labels, nil,
		),
		forwardedDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "forwarded_records_total"),
			"Records passed straight to an attached log service",
			labels, nil,
		),
		replayedDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "replayed_records_total"),
			"Buffered records replayed when a log service was attached",
			labels, nil,
		),
		attachedDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "attached"),
			"1 when a log service is attached, 0 otherwise",
			labels, nil,
		),
	}
}

// Track adds or replaces the adapter reported under name.
func (c *AdapterCollector) Track(name string, adapter StatsProvider) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.adapters[name] = adapter
}

// Untrack stops reporting name.
func (c *AdapterCollector) Untrack(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.adapters, name)
}

// Describe sends the metric descriptors.
func (c *AdapterCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.pendingDesc
	ch <- c.forwardedDesc
	ch <- c.replayedDesc
	ch <- c.attachedDesc
}

// Collect sends one sample per metric and tracked adapter.
func (c *AdapterCollector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	names := slices.Sorted(maps.Keys(c.adapters))
	adapters := maps.Clone(c.adapters)
	c.mu.RUnlock()

	for _, name := range names {
		stats := adapters[name].Stats()

		attached := 0.0
		if stats.Attached {
			attached = 1
		}

		ch <- prometheus.MustNewConstMetric(c.pendingDesc, prometheus.GaugeValue, float64(stats.Pending), name)
		ch <- prometheus.MustNewConstMetric(c.forwardedDesc, prometheus.CounterValue, float64(stats.Forwarded), name)
		ch <- prometheus.MustNewConstMetric(c.replayedDesc, prometheus.CounterValue, float64(stats.Replayed), name)
		ch <- prometheus.MustNewConstMetric(c.attachedDesc, prometheus.GaugeValue, attached, name)
	}
}

// LevelCounter counts records per level. Register it as a hook on a log
// service and as a collector on a registry.
type LevelCounter struct {
	records *prometheus.CounterVec
}

// Ensure LevelCounter implements the prometheus.Collector and Hook interfaces.
var (
	_ prometheus.Collector = (*LevelCounter)(nil)
	_ svcadapters.Hook     = (*LevelCounter)(nil)
)

// NewLevelCounter creates a counter with one series per level.
func NewLevelCounter() *LevelCounter {
	records := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_total",
		Help:      "Records written by the log service, by level",
	}, []string{"level"})

	for _, level := range svcadapters.AllLevels() {
		records.WithLabelValues(level.String())
	}

	return &LevelCounter{records: records}
}

// OnLog increments the counter for the entry's level.
func (l *LevelCounter) OnLog(entry *svcadapters.Entry) error {
	l.records.WithLabelValues(entry.Level.String()).Inc()

	return nil
}

// Levels returns every level.
func (*LevelCounter) Levels() []svcadapters.Level {
	return svcadapters.AllLevels()
}

// Describe forwards to the counter vector.
func (l *LevelCounter) Describe(ch chan<- *prometheus.Desc) {
	l.records.Describe(ch)
}

// Collect forwards to the counter vector.
func (l *LevelCounter) Collect(ch chan<- prometheus.Metric) {
	l.records.Collect(ch)
}
