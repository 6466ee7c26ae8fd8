package rs01dict

import "sync/atomic"

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Queries are not timed individually; only rejected queries are reported so
// the hot path stays free of clock reads.
type MetricsCollector interface {
	// RecordBuild is called after each construction attempt.
	// err is nil if successful.
	RecordBuild(info BuildInfo, err error)

	// RecordRejectedQuery is called when a query argument is out of range.
	// op is one of rank0, rank1, select0, select1 or get.
	RecordRejectedQuery(op string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(BuildInfo, error) {}
func (NoopMetricsCollector) RecordRejectedQuery(string)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount      atomic.Int64
	BuildErrors     atomic.Int64
	BuildTotalNanos atomic.Int64
	BitsIndexed     atomic.Int64
	RejectedQueries atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(info BuildInfo, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(info.Duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
		return
	}
	b.BitsIndexed.Add(int64(info.Len))
}

// RecordRejectedQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRejectedQuery(string) {
	b.RejectedQueries.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:      b.BuildCount.Load(),
		BuildErrors:     b.BuildErrors.Load(),
		BuildAvgNanos:   b.getAvgBuildNanos(),
		BitsIndexed:     b.BitsIndexed.Load(),
		RejectedQueries: b.RejectedQueries.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgBuildNanos() int64 {
	count := b.BuildCount.Load()
	if count == 0 {
		return 0
	}
	return b.BuildTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount      int64
	BuildErrors     int64
	BuildAvgNanos   int64
	BitsIndexed     int64
	RejectedQueries int64
}
