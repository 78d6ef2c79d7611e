package counter

import (
	"context"

	"go.uber.org/zap"
)

// Option configures an Engine or a single query.
// Options passed to New become the engine's defaults; options passed to a
// query are applied on top of them for that call only.
type Option func(*Options)

// Options holds the tunables shared by all counting operations.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Logger receives debug tracing; defaults to zap.NewNop().
	Logger *zap.Logger

	// MaxLength, if non-negative, is the longest length Enumeration accepts.
	// Default is -1 (no limit).
	MaxLength int

	// MaxResults, if non-negative, is the number of sequences Enumeration may
	// produce before aborting with ErrResultLimit. Default is -1 (no limit).
	MaxResults int64

	// OnSequence, if non-nil, receives every completed sequence produced by
	// Enumeration. Returning an error aborts the walk.
	OnSequence func(seq string) error

	// Parallelism bounds the goroutines CountRange runs at once.
	// Zero or negative means one goroutine per length.
	Parallelism int
}

// DefaultOptions returns Options with a background context, a no-op
// logger, and no limits.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Logger:      zap.NewNop(),
		MaxLength:   -1,
		MaxResults:  -1,
		OnSequence:  nil,
		Parallelism: 0,
	}
}

// WithContext sets the context checked during enumeration, DP steps, and
// range fan-out. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger installs l for debug tracing. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("counter: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMaxLength caps the length Enumeration will attempt. Panics on a
// negative limit.
func WithMaxLength(n int) Option {
	if n < 0 {
		panic("counter: WithMaxLength(n < 0)")
	}
	return func(o *Options) {
		o.MaxLength = n
	}
}

// WithMaxResults caps how many sequences Enumeration may produce. Panics on
// a negative limit.
func WithMaxResults(n int64) Option {
	if n < 0 {
		panic("counter: WithMaxResults(n < 0)")
	}
	return func(o *Options) {
		o.MaxResults = n
	}
}

// WithOnSequence installs a hook called once per enumerated sequence.
// Panics on nil.
func WithOnSequence(fn func(seq string) error) Option {
	if fn == nil {
		panic("counter: WithOnSequence(nil)")
	}
	return func(o *Options) {
		o.OnSequence = fn
	}
}

// WithParallelism bounds CountRange concurrency. n ≤ 0 removes the bound.
func WithParallelism(n int) Option {
	return func(o *Options) {
		o.Parallelism = n
	}
}
