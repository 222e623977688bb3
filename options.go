package liveset

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/liveset/liveness"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	concurrency      int
	maxPasses        int
	order            liveness.Order
	interference     bool
}

// Option configures an Analyzer.
type Option func(*options)

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &liveset.BasicMetricsCollector{}
//	a := liveset.New(liveset.WithMetricsCollector(metrics))
//	// ... use a ...
//	stats := metrics.GetStats()
//	fmt.Printf("Analyses: %d, Avg latency: %dns\n", stats.AnalysisCount, stats.AnalysisAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := liveset.NewJSONLogger(slog.LevelDebug)
//	a := liveset.New(liveset.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithConcurrency bounds the number of functions AnalyzeAll processes at once.
// Values <= 0 select runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithMaxPasses bounds the fixpoint loop; see liveness.WithMaxPasses.
func WithMaxPasses(n int) Option {
	return func(o *options) {
		o.maxPasses = n
	}
}

// WithOrder sets the block visiting order of the fixpoint loop.
func WithOrder(order liveness.Order) Option {
	return func(o *options) {
		o.order = order
	}
}

// WithInterference makes every Report carry the interference graph.
func WithInterference(enabled bool) Option {
	return func(o *options) {
		o.interference = enabled
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		order:            liveness.Reverse,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.concurrency <= 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	return o
}
