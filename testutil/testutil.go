package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/liveset/bitset"
	"github.com/hupe1980/liveset/liveness"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// RandomSet returns a set of the given length where each element is present
// with probability density.
func (r *RNG) RandomSet(length int, density float64) *bitset.BitSet {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := bitset.Make(length)
	for i := 0; i < length; i++ {
		if r.rand.Float64() < density {
			s.Add(i)
		}
	}
	return s
}

// RandomElements returns count values drawn from [0, n), possibly repeated.
func (r *RNG) RandomElements(count, n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n <= 0 {
		return nil
	}
	out := make([]int, count)
	for i := range out {
		out[i] = r.rand.Intn(n)
	}
	return out
}

// RandomFunction builds a function with numBlocks blocks over numVars
// variables. Each block gets up to maxInstrs instructions and one or two
// successors, so loops and joins both occur.
func (r *RNG) RandomFunction(numBlocks, numVars, maxInstrs int) *liveness.Function {
	r.mu.Lock()
	defer r.mu.Unlock()

	fn := &liveness.Function{
		Name:    fmt.Sprintf("rand_%d_%d", r.seed, numBlocks),
		NumVars: numVars,
		Blocks:  make([]liveness.Block, numBlocks),
	}
	for b := range fn.Blocks {
		blk := &fn.Blocks[b]
		if numVars > 0 && maxInstrs > 0 {
			n := r.rand.Intn(maxInstrs + 1)
			blk.Instrs = make([]liveness.Instr, n)
			for i := range blk.Instrs {
				blk.Instrs[i] = liveness.Instr{
					Uses: r.varsLocked(numVars, 2),
					Defs: r.varsLocked(numVars, 1),
				}
			}
		}
		if b == numBlocks-1 {
			continue // exit block
		}
		blk.Succs = append(blk.Succs, b+1)
		if r.rand.Intn(3) == 0 {
			blk.Succs = append(blk.Succs, r.rand.Intn(numBlocks))
		}
	}
	return fn
}

// varsLocked returns up to limit variables (caller must hold lock).
func (r *RNG) varsLocked(numVars, limit int) []int {
	n := r.rand.Intn(limit + 1)
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(numVars)
	}
	return out
}

// Members returns the members of s as a map. It serves as a naive reference
// model for set algebra tests.
func Members(s *bitset.BitSet) map[int]bool {
	m := make(map[int]bool)
	s.ForEach(func(e int) bool {
		m[e] = true
		return true
	})
	return m
}

// ReferenceLiveness computes live-in and live-out per block with maps and a
// round-robin fixpoint, independent of package bitset's algebra.
func ReferenceLiveness(fn *liveness.Function) (in, out []map[int]bool) {
	n := len(fn.Blocks)
	in = make([]map[int]bool, n)
	out = make([]map[int]bool, n)
	for b := range n {
		in[b] = map[int]bool{}
		out[b] = map[int]bool{}
	}
	for changed := true; changed; {
		changed = false
		for b := 0; b < n; b++ {
			blk := fn.Blocks[b]
			for _, s := range blk.Succs {
				for v := range in[s] {
					if !out[b][v] {
						out[b][v] = true
						changed = true
					}
				}
			}
			// Walk instructions backwards from out.
			live := map[int]bool{}
			for v := range out[b] {
				live[v] = true
			}
			for i := len(blk.Instrs) - 1; i >= 0; i-- {
				for _, d := range blk.Instrs[i].Defs {
					delete(live, d)
				}
				for _, u := range blk.Instrs[i].Uses {
					live[u] = true
				}
			}
			for v := range live {
				if !in[b][v] {
					in[b][v] = true
					changed = true
				}
			}
		}
	}
	return in, out
}
