package liveness

import (
	"fmt"

	"github.com/hupe1980/liveset/bitset"
)

// Result holds the solved live sets, one pair per block.
type Result struct {
	LiveIn  []*bitset.BitSet
	LiveOut []*bitset.BitSet

	// Passes is the number of passes run, including the final one that
	// changed nothing.
	Passes int
}

// Free releases every set held by r.
func (r *Result) Free() {
	freeAll(r.LiveIn)
	freeAll(r.LiveOut)
	r.LiveIn, r.LiveOut = nil, nil
}

// Solve runs the liveness fixpoint over fn.
func Solve(fn *Function, optFns ...Option) (*Result, error) {
	if err := fn.Validate(); err != nil {
		return nil, err
	}
	o := applyOptions(optFns)

	n := len(fn.Blocks)
	maxPasses := o.MaxPasses
	if maxPasses <= 0 {
		maxPasses = 2*n*fn.NumVars + 1
	}

	use, def := LocalSets(fn)
	defer freeAll(use)
	defer freeAll(def)

	res := &Result{
		LiveIn:  make([]*bitset.BitSet, n),
		LiveOut: make([]*bitset.BitSet, n),
	}
	for b := range n {
		res.LiveIn[b] = bitset.Make(fn.NumVars)
		res.LiveOut[b] = bitset.Make(fn.NumVars)
	}

	scratch := bitset.Make(fn.NumVars)
	defer scratch.Free()

	order := o.Order.blocks(n)
	for pass := 1; pass <= maxPasses; pass++ {
		changed := 0
		for _, b := range order {
			scratch.Clear()
			for _, s := range fn.Blocks[b].Succs {
				scratch.UnionInPlace(res.LiveIn[s])
			}
			if !bitset.Equal(scratch, res.LiveOut[b]) {
				res.LiveOut[b].CopyFrom(scratch)
				changed++
			}

			scratch.CopyFrom(res.LiveOut[b])
			scratch.DifferenceInPlace(def[b])
			scratch.UnionInPlace(use[b])
			if !bitset.Equal(scratch, res.LiveIn[b]) {
				res.LiveIn[b].CopyFrom(scratch)
				changed++
			}
		}

		o.Logger.Debug("liveness pass",
			"function", fn.Name,
			"pass", pass,
			"order", o.Order.String(),
			"changed", changed,
		)

		if changed == 0 {
			res.Passes = pass
			return res, nil
		}
	}

	res.Free()
	return nil, fmt.Errorf("%w: %q after %d passes", ErrNoConvergence, fn.Name, maxPasses)
}
