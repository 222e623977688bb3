package liveset

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAnalysis is called after each function is analyzed.
	// blocks is the number of basic blocks, passes the number of fixpoint
	// passes (0 on failure), err is nil if successful.
	RecordAnalysis(blocks, passes int, duration time.Duration, err error)

	// RecordBatch is called after each AnalyzeAll call.
	// count is the number of functions attempted, failed the number that failed.
	RecordBatch(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAnalysis(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration)           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AnalysisCount      atomic.Int64
	AnalysisErrors     atomic.Int64
	AnalysisTotalNanos atomic.Int64
	BlockCount         atomic.Int64
	PassCount          atomic.Int64
	BatchCount         atomic.Int64
	BatchItems         atomic.Int64
	BatchFailed        atomic.Int64
}

// RecordAnalysis implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAnalysis(blocks, passes int, duration time.Duration, err error) {
	b.AnalysisCount.Add(1)
	b.AnalysisTotalNanos.Add(duration.Nanoseconds())
	b.BlockCount.Add(int64(blocks))
	b.PassCount.Add(int64(passes))
	if err != nil {
		b.AnalysisErrors.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count, failed int, _ time.Duration) {
	b.BatchCount.Add(1)
	b.BatchItems.Add(int64(count))
	b.BatchFailed.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AnalysisCount:    b.AnalysisCount.Load(),
		AnalysisErrors:   b.AnalysisErrors.Load(),
		AnalysisAvgNanos: b.getAvgAnalysisNanos(),
		BlockCount:       b.BlockCount.Load(),
		PassCount:        b.PassCount.Load(),
		BatchCount:       b.BatchCount.Load(),
		BatchItems:       b.BatchItems.Load(),
		BatchFailed:      b.BatchFailed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgAnalysisNanos() int64 {
	count := b.AnalysisCount.Load()
	if count == 0 {
		return 0
	}
	return b.AnalysisTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AnalysisCount    int64
	AnalysisErrors   int64
	AnalysisAvgNanos int64
	BlockCount       int64
	PassCount        int64
	BatchCount       int64
	BatchItems       int64
	BatchFailed      int64
}
