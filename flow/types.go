package flow

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/netflow/residual"
)

// Solver is the shared contract for a max-flow engine. Implementations
// mutate their residual graph in place; on return, no source-to-sink
// path of positive-capacity edges remains.
type Solver interface {
	// MaxFlow computes the maximum flow from s to t and returns the
	// accumulated value. If s == t, it returns 0 without touching the
	// graph. Calling MaxFlow again on an already-saturated residual
	// returns 0.
	MaxFlow(ctx context.Context, s, t int) (int64, error)
}

// OnAugment, if set, is called after each augmenting push with the
// amount pushed and the running total. It is purely observational —
// returning from it does not affect the solver.
type AugmentHook func(pushed, total int64)

// FlowOptions configures a solver's observability hooks. Capacities and
// algorithmic behavior are NOT configurable here — both solvers compute
// exact integer max-flow, unconditionally.
type FlowOptions struct {
	// Logger receives a debug line per augmenting push when non-nil.
	Logger *slog.Logger

	// Verbose additionally logs one line per BFS phase (Dinic) or per
	// shortest-path search (Edmonds-Karp) at debug level.
	Verbose bool

	// OnAugment is invoked after every augmenting push, in addition to
	// any logging. May be nil.
	OnAugment AugmentHook
}

// Option configures FlowOptions via functional arguments.
type Option func(*FlowOptions)

// DefaultOptions returns FlowOptions with a discarding logger and no
// hooks, then applies opts in order.
func DefaultOptions(opts ...Option) FlowOptions {
	o := FlowOptions{
		Logger:  slog.New(slog.NewTextHandler(discardWriter{}, nil)),
		Verbose: false,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the structured logger used for augmentation/phase
// traces. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *FlowOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithVerbose enables per-phase debug logging.
func WithVerbose() Option {
	return func(o *FlowOptions) {
		o.Verbose = true
	}
}

// WithOnAugment registers a callback fired after every augmenting push.
func WithOnAugment(fn AugmentHook) Option {
	return func(o *FlowOptions) {
		o.OnAugment = fn
	}
}

// discardWriter is an io.Writer that discards everything written to it,
// used so a solver always has a non-nil Logger to call without an extra
// nil check on every hot-path log line.
type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// validateEndpoints checks that s and t are valid vertex indices in g.
func validateEndpoints(g *residual.Graph, s, t int) error {
	if s < 0 || s >= g.N() || t < 0 || t >= g.N() {
		return residual.ErrInvalidVertex
	}
	return nil
}

// addFlow adds pushed onto total, failing with an OverflowError instead
// of silently wrapping past math.MaxInt64.
func addFlow(total, pushed int64) (int64, error) {
	if pushed > 0 && total > maxInt64-pushed {
		return total, residual.OverflowError{Accumulated: total, Pushed: pushed}
	}
	return total + pushed, nil
}

const maxInt64 = 1<<63 - 1
