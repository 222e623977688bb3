package liveset

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/liveset/liveness"
)

// Analyzer runs liveness analysis over functions. It holds no per-function
// state, so one Analyzer may be shared across goroutines.
type Analyzer struct {
	opts options
}

// New creates an Analyzer.
func New(optFns ...Option) *Analyzer {
	return &Analyzer{opts: applyOptions(optFns)}
}

// Report is the outcome of analyzing one function. The Report owns its sets.
type Report struct {
	Function string

	// Liveness holds per-block live-in and live-out sets.
	Liveness *liveness.Result

	// Interference is nil unless WithInterference(true) was given.
	Interference *liveness.Graph
}

// Free releases every set held by r.
func (r *Report) Free() {
	if r.Liveness != nil {
		r.Liveness.Free()
		r.Liveness = nil
	}
	if r.Interference != nil {
		r.Interference.Free()
		r.Interference = nil
	}
}

// Analyze solves liveness for fn and, if configured, builds its
// interference graph.
func (a *Analyzer) Analyze(ctx context.Context, fn *liveness.Function) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, translateError("", liveness.ErrNilFunction)
	}

	logger := a.opts.logger.WithFunction(fn.Name).WithBlocks(len(fn.Blocks)).WithVars(fn.NumVars)

	start := time.Now()
	rep, err := a.analyze(fn, logger)
	duration := time.Since(start)

	passes := 0
	if rep != nil {
		passes = rep.Liveness.Passes
	}
	a.opts.metricsCollector.RecordAnalysis(len(fn.Blocks), passes, duration, err)
	logger.LogAnalysis(ctx, passes, duration, err)

	return rep, err
}

func (a *Analyzer) analyze(fn *liveness.Function, logger *Logger) (*Report, error) {
	res, err := liveness.Solve(fn,
		liveness.WithOrder(a.opts.order),
		liveness.WithMaxPasses(a.opts.maxPasses),
		liveness.WithLogger(logger.Logger),
	)
	if err != nil {
		return nil, translateError(fn.Name, err)
	}

	rep := &Report{Function: fn.Name, Liveness: res}
	if a.opts.interference {
		g, err := liveness.BuildInterference(fn, res)
		if err != nil {
			rep.Free()
			return nil, translateError(fn.Name, err)
		}
		rep.Interference = g
	}
	return rep, nil
}

// AnalyzeAll analyzes independent functions concurrently, at most
// WithConcurrency at a time. Each function gets its own sets. On the first
// error the remaining work is cancelled, every completed Report is freed and
// the error is returned.
func (a *Analyzer) AnalyzeAll(ctx context.Context, fns []*liveness.Function) ([]*Report, error) {
	start := time.Now()
	reports := make([]*Report, len(fns))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.concurrency)
	for i, fn := range fns {
		g.Go(func() error {
			rep, err := a.Analyze(gctx, fn)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	err := g.Wait()
	duration := time.Since(start)

	failed := 0
	if err != nil {
		for i, rep := range reports {
			if rep == nil {
				failed++
				continue
			}
			rep.Free()
			reports[i] = nil
		}
	}
	a.opts.metricsCollector.RecordBatch(len(fns), failed, duration)
	a.opts.logger.LogBatch(ctx, len(fns), failed, duration)

	if err != nil {
		return nil, err
	}
	return reports, nil
}
