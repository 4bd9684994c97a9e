package gslice

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
}

var defaultOptions = &options{
	logger:           NoopLogger(),
	metricsCollector: NoopMetricsCollector{},
}

// Option configures a slice at construction time.
type Option func(*options)

// WithLogger configures structured logging of buffer relocations and rejected
// operations. Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := gslice.NewJSONLogger(slog.LevelDebug)
//	s := gslice.New[int](16, gslice.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func applyOptions(opts []Option) *options {
	if len(opts) == 0 {
		return defaultOptions
	}
	o := *defaultOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &o
}

func (o *options) relocated(length, oldCap, newCap int) {
	o.logger.LogRelocation(length, oldCap, newCap)
	o.metricsCollector.RecordRelocation(oldCap, newCap)
}

func (o *options) rejected(op string, err error) error {
	o.logger.LogRejected(op, err)
	o.metricsCollector.RecordFailure(op, err)
	return err
}
