// Package liveness computes per-block live variable sets with an iterative
// backward dataflow analysis built on package bitset.
//
// For every block b:
//
//	out[b] = ∪ in[s]  for s in succ(b)
//	in[b]  = use[b] ∪ (out[b] \ def[b])
//
// Solve iterates until one full pass over the blocks changes no set. Sets only
// grow and are bounded by the variable universe, so the loop terminates; the
// visiting order affects the number of passes, not the result.
//
// BuildInterference turns a solved Result into an interference graph with
// one adjacency set per variable.
//
// # Example Usage
//
//	fn := &liveness.Function{
//	    Name:    "f",
//	    NumVars: 3,
//	    Blocks: []liveness.Block{
//	        {Instrs: []liveness.Instr{{Defs: []int{0}}, {Defs: []int{1}}}, Succs: []int{1}},
//	        {Instrs: []liveness.Instr{{Uses: []int{0, 1}, Defs: []int{2}}}},
//	    },
//	}
//	res, err := liveness.Solve(fn)
//	if err != nil { ... }
//	defer res.Free()
//
//	g, err := liveness.BuildInterference(fn, res)
//	if err != nil { ... }
//	defer g.Free()
package liveness
