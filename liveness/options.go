package liveness

import "log/slog"

// Order is the block visiting order within one pass.
type Order int

const (
	// Reverse visits blocks from last to first. Liveness flows backwards, so
	// this usually needs fewer passes.
	Reverse Order = iota
	// Forward visits blocks in index order.
	Forward
)

func (o Order) String() string {
	switch o {
	case Reverse:
		return "reverse"
	case Forward:
		return "forward"
	default:
		return "unknown"
	}
}

// blocks returns the visiting sequence for n blocks.
func (o Order) blocks(n int) []int {
	seq := make([]int, n)
	for i := range seq {
		if o == Forward {
			seq[i] = i
		} else {
			seq[i] = n - 1 - i
		}
	}
	return seq
}

// Options configures Solve.
type Options struct {
	// Order is the block visiting order. Default: Reverse.
	Order Order

	// MaxPasses bounds the number of passes. Zero means the monotonicity
	// bound 2*len(Blocks)*NumVars + 1, which is never exceeded.
	MaxPasses int

	// Logger receives one debug record per pass. Default: discard.
	Logger *slog.Logger
}

// Option configures Solve.
type Option func(*Options)

// WithOrder sets the block visiting order.
func WithOrder(order Order) Option {
	return func(o *Options) {
		o.Order = order
	}
}

// WithMaxPasses bounds the number of passes; Solve returns ErrNoConvergence
// when the bound is hit.
func WithMaxPasses(n int) Option {
	return func(o *Options) {
		o.MaxPasses = n
	}
}

// WithLogger sets the logger used for per-pass debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func applyOptions(optFns []Option) Options {
	o := Options{Order: Reverse}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}
