package acumesh

import "github.com/hupe1980/acumesh/scoring"

type options struct {
	k          int
	numWorkers int
	validate   bool
	logger     *Logger
	metrics    MetricsCollector
}

func defaultOptions() options {
	return options{
		k:          scoring.DefaultK,
		numWorkers: 1,
		validate:   true,
		logger:     NoopLogger(),
		metrics:    NoopMetricsCollector{},
	}
}

// Option configures Engine construction.
type Option func(*options)

// WithK sets the neighbor count used for nearest-neighbor selection.
// Values <= 0 fall back to the default of 6. Cells with fewer vertices than
// k+1 simply use all available neighbors. Capping k is the recommended lever
// when scoring latency matters more than score fidelity.
func WithK(k int) Option {
	return func(o *options) {
		if k <= 0 {
			k = scoring.DefaultK
		}
		o.k = k
	}
}

// WithNumWorkers sets the number of goroutines used by the full pass.
// Cells are scored independently and written to disjoint table slots, so
// parallelism needs no locking. n <= 1 (the default) keeps the pass
// sequential and allocation-light. The incremental pass is always
// sequential; changed sets are small by construction.
func WithNumWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.numWorkers = n
	}
}

// WithoutValidation disables the structural mesh check on Score and
// Rescore. Use this only when the mesh provably comes from a trusted
// triangulation engine; a malformed cell table will then panic on an
// out-of-bounds read instead of returning ErrMalformedMesh.
func WithoutValidation() Option {
	return func(o *options) {
		o.validate = false
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// scoring operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}
