package rs01dict

import "log/slog"

type options struct {
	config           Config
	autoConfig       bool
	concurrency      int
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures dictionary construction.
type Option func(*options)

// WithConfig sets the tuning constants. The default is DefaultConfig().
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
		o.autoConfig = false
	}
}

// WithAutoConfig derives the tuning constants from the input length with
// AutoConfig.
func WithAutoConfig() Option {
	return func(o *options) {
		o.autoConfig = true
	}
}

// WithConcurrency bounds the goroutines used during construction.
//
// The rank large-block pass is split across disjoint block ranges and the
// select indices for 0 and 1 are built side by side. Values <= 1 build
// sequentially (default). Queries are always lock-free.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &rs01dict.BasicMetricsCollector{}
//	d, _ := rs01dict.New(bits, rs01dict.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for construction.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := rs01dict.NewJSONLogger(slog.LevelDebug)
//	d, _ := rs01dict.New(bits, rs01dict.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
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

func applyOptions(optFns []Option) options {
	o := options{
		config:           DefaultConfig(),
		concurrency:      1,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
