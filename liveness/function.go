package liveness

import (
	"fmt"

	"github.com/hupe1980/liveset/bitset"
)

// Instr is one instruction reduced to the variables it reads and writes.
// Uses are read before Defs are written.
type Instr struct {
	Uses []int
	Defs []int
}

// Block is a basic block: straight-line instructions plus successor edges
// given as indices into Function.Blocks.
type Block struct {
	Instrs []Instr
	Succs  []int
}

// Function is the unit of analysis. Variables are numbered [0, NumVars).
type Function struct {
	Name    string
	NumVars int
	Blocks  []Block
}

// Validate checks that every variable and successor index is in range.
func (fn *Function) Validate() error {
	if fn == nil {
		return ErrNilFunction
	}
	if fn.NumVars < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeVars, fn.NumVars)
	}
	for b, blk := range fn.Blocks {
		for i, in := range blk.Instrs {
			for _, v := range in.Uses {
				if v < 0 || v >= fn.NumVars {
					return &ErrVariableOutOfRange{Block: b, Instr: i, Var: v, NumVars: fn.NumVars}
				}
			}
			for _, v := range in.Defs {
				if v < 0 || v >= fn.NumVars {
					return &ErrVariableOutOfRange{Block: b, Instr: i, Var: v, NumVars: fn.NumVars}
				}
			}
		}
		for _, s := range blk.Succs {
			if s < 0 || s >= len(fn.Blocks) {
				return &ErrInvalidSuccessor{Block: b, Succ: s, NumBlocks: len(fn.Blocks)}
			}
		}
	}
	return nil
}

// LocalSets returns, per block, the upward-exposed uses and the definitions.
// The caller owns the returned sets. fn must be valid.
func LocalSets(fn *Function) (use, def []*bitset.BitSet) {
	use = make([]*bitset.BitSet, len(fn.Blocks))
	def = make([]*bitset.BitSet, len(fn.Blocks))
	for b, blk := range fn.Blocks {
		u := bitset.Make(fn.NumVars)
		d := bitset.Make(fn.NumVars)
		for _, in := range blk.Instrs {
			for _, v := range in.Uses {
				if !d.Contains(v) {
					u.Add(v)
				}
			}
			for _, v := range in.Defs {
				d.Add(v)
			}
		}
		use[b], def[b] = u, d
	}
	return use, def
}

func freeAll(sets []*bitset.BitSet) {
	for _, s := range sets {
		if s != nil {
			s.Free()
		}
	}
}
