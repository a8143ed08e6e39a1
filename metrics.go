package acumesh

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordFullPass is called after each full scoring pass.
	// cells is the number of cells scored, duration the total time taken,
	// err nil if successful.
	RecordFullPass(cells int, duration time.Duration, err error)

	// RecordIncremental is called after each incremental rescoring pass.
	// changed is the number of changed-cell indices submitted (including
	// any skipped as out of range).
	RecordIncremental(changed int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFullPass(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordIncremental(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FullPassCount         atomic.Int64
	FullPassErrors        atomic.Int64
	FullPassCells         atomic.Int64
	FullPassTotalNanos    atomic.Int64
	IncrementalCount      atomic.Int64
	IncrementalErrors     atomic.Int64
	IncrementalCells      atomic.Int64
	IncrementalTotalNanos atomic.Int64
}

// RecordFullPass implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFullPass(cells int, duration time.Duration, err error) {
	b.FullPassCount.Add(1)
	b.FullPassCells.Add(int64(cells))
	b.FullPassTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FullPassErrors.Add(1)
	}
}

// RecordIncremental implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIncremental(changed int, duration time.Duration, err error) {
	b.IncrementalCount.Add(1)
	b.IncrementalCells.Add(int64(changed))
	b.IncrementalTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.IncrementalErrors.Add(1)
	}
}

// AverageFullPassDuration returns the mean full-pass duration, or 0 if no
// full pass has been recorded.
func (b *BasicMetricsCollector) AverageFullPassDuration() time.Duration {
	count := b.FullPassCount.Load()
	if count == 0 {
		return 0
	}
	return time.Duration(b.FullPassTotalNanos.Load() / count)
}

// AverageIncrementalDuration returns the mean incremental-pass duration, or
// 0 if no incremental pass has been recorded.
func (b *BasicMetricsCollector) AverageIncrementalDuration() time.Duration {
	count := b.IncrementalCount.Load()
	if count == 0 {
		return 0
	}
	return time.Duration(b.IncrementalTotalNanos.Load() / count)
}
