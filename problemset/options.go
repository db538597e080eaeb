package problemset

import (
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/mathgen/builder"
)

// tracerName is the instrumentation scope of the default tracer.
const tracerName = "github.com/katalvlaran/mathgen/problemset"

// Option customizes batch generation.
type Option func(*options)

type options struct {
	workers     int
	seed        int64
	unique      bool
	maxAttempts int
	builderOpts []builder.BuilderOption
	tracer      trace.Tracer
}

func newOptions(opts ...Option) options {
	o := options{
		workers: runtime.GOMAXPROCS(0),
		seed:    defaultBatchSeed,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWorkers bounds the number of concurrent builders. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("problemset: WithWorkers(n<1)")
	}
	return func(o *options) { o.workers = n }
}

// WithSeed sets the batch seed; 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = normalizeSeed(seed) }
}

// WithUnique rejects problems whose rendered form was already produced,
// re-rolling each one at most maxAttempts times. Panics if maxAttempts < 1.
func WithUnique(maxAttempts int) Option {
	if maxAttempts < 1 {
		panic("problemset: WithUnique(maxAttempts<1)")
	}
	return func(o *options) {
		o.unique = true
		o.maxAttempts = maxAttempts
	}
}

// WithBuilderOptions passes options to every Build call. Any RNG option is
// overridden by the per-problem stream.
func WithBuilderOptions(opts ...builder.BuilderOption) Option {
	return func(o *options) {
		o.builderOpts = append(o.builderOpts, opts...)
	}
}

// WithTracer replaces the global-provider tracer. Panics on nil.
func WithTracer(t trace.Tracer) Option {
	if t == nil {
		panic("problemset: WithTracer(nil)")
	}
	return func(o *options) { o.tracer = t }
}
