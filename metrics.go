package gslice

import "sync/atomic"

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Collectors may be shared by many slices and must be safe for concurrent use.
type MetricsCollector interface {
	// RecordRelocation is called whenever a slice moves its elements into
	// storage of a different capacity.
	RecordRelocation(oldCap, newCap int)

	// RecordFailure is called when an operation returns an error.
	RecordFailure(op string, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRelocation(int, int)   {}
func (NoopMetricsCollector) RecordFailure(string, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	Relocations   atomic.Int64
	GrownElements atomic.Int64
	Failures      atomic.Int64
}

// RecordRelocation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelocation(oldCap, newCap int) {
	b.Relocations.Add(1)
	if newCap > oldCap {
		b.GrownElements.Add(int64(newCap - oldCap))
	}
}

// RecordFailure implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFailure(string, error) {
	b.Failures.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		Relocations:   b.Relocations.Load(),
		GrownElements: b.GrownElements.Load(),
		Failures:      b.Failures.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector counters.
type BasicMetricsStats struct {
	Relocations   int64
	GrownElements int64
	Failures      int64
}
