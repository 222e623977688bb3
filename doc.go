// Package liveset computes live variable sets and interference graphs for
// the register allocator of an intermediate-code compiler.
//
// The work is split in three layers:
//
//   - bitset: a fixed-length, byte-aligned set of integers with union,
//     intersection and cross-length equality. Every analysis set is one of these.
//   - liveness: the iterative dataflow fixpoint and the interference graph.
//   - liveset (this package): an Analyzer that adds logging, metrics and
//     concurrent analysis of independent functions.
//
// # Quick Start
//
//	a := liveset.New(
//	    liveset.WithInterference(true),
//	    liveset.WithLogger(liveset.NewTextLogger(slog.LevelInfo)),
//	)
//
//	rep, err := a.Analyze(ctx, fn)
//	if err != nil { ... }
//	defer rep.Free()
//
//	for b := range fn.Blocks {
//	    fmt.Println(b, rep.Liveness.LiveIn[b], rep.Liveness.LiveOut[b])
//	}
//
// # Many Functions
//
// Functions are independent, so AnalyzeAll solves them in parallel. Sets are
// never shared between goroutines:
//
//	reports, err := a.AnalyzeAll(ctx, fns)
//
// # Ownership
//
// Sets are single-owner values. A Report owns the sets it returns; call Free
// when done. Using a set after Free panics.
package liveset
