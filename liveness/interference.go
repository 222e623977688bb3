package liveness

import "github.com/hupe1980/liveset/bitset"

// Graph is an interference graph over variables [0, NumVars()).
// Two variables interfere when one is defined while the other is live.
type Graph struct {
	adj []*bitset.BitSet
}

// NewGraph returns an edgeless graph over numVars variables.
func NewGraph(numVars int) *Graph {
	g := &Graph{adj: make([]*bitset.BitSet, numVars)}
	for v := range g.adj {
		g.adj[v] = bitset.Make(numVars)
	}
	return g
}

// AddEdge records that a and b interfere. Self edges are ignored.
func (g *Graph) AddEdge(a, b int) {
	if a == b {
		return
	}
	g.adj[a].Add(b)
	g.adj[b].Add(a)
}

// NumVars returns the number of variables.
func (g *Graph) NumVars() int { return len(g.adj) }

// Interferes reports whether a and b interfere.
func (g *Graph) Interferes(a, b int) bool {
	return g.adj[a].Contains(b)
}

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) int {
	return g.adj[v].Count()
}

// Neighbors returns the neighbors of v in ascending order.
func (g *Graph) Neighbors(v int) []int {
	return g.adj[v].Elements()
}

// Adjacency returns the neighbor set of v. The caller must not modify or free it.
func (g *Graph) Adjacency(v int) *bitset.BitSet {
	return g.adj[v]
}

// Edges returns every edge once as {a, b} with a < b, ordered by a then b.
func (g *Graph) Edges() [][2]int {
	var edges [][2]int
	for a, s := range g.adj {
		for b := s.NextSet(a + 1); b < s.Len(); b = s.NextSet(b + 1) {
			edges = append(edges, [2]int{a, b})
		}
	}
	return edges
}

// Free releases the adjacency sets.
func (g *Graph) Free() {
	freeAll(g.adj)
	g.adj = nil
}

// BuildInterference derives the interference graph of fn from its solved
// live sets by walking each block backwards from LiveOut.
func BuildInterference(fn *Function, res *Result) (*Graph, error) {
	if err := fn.Validate(); err != nil {
		return nil, err
	}
	if res == nil || len(res.LiveOut) != len(fn.Blocks) {
		return nil, ErrResultMismatch
	}
	for _, s := range res.LiveOut {
		if s.Len() != fn.NumVars {
			return nil, ErrResultMismatch
		}
	}

	g := NewGraph(fn.NumVars)
	live := bitset.Make(fn.NumVars)
	defer live.Free()

	for b, blk := range fn.Blocks {
		live.CopyFrom(res.LiveOut[b])
		for i := len(blk.Instrs) - 1; i >= 0; i-- {
			in := blk.Instrs[i]
			for j, d := range in.Defs {
				live.ForEach(func(v int) bool {
					g.AddEdge(d, v)
					return true
				})
				// Defs of one instruction are written together.
				for _, e := range in.Defs[j+1:] {
					g.AddEdge(d, e)
				}
			}
			for _, d := range in.Defs {
				live.Remove(d)
			}
			for _, u := range in.Uses {
				live.Add(u)
			}
		}
	}
	return g, nil
}
