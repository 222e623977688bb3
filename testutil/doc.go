// Package testutil provides testing utilities for liveset.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG that generates random sets, random control-flow
// graphs and a naive reference model to check set algebra against.
//
// # Random Sets
//
//	rng := testutil.NewRNG(seed)
//	s := rng.RandomSet(100, 0.3)     // ~30% of [0, 100) set
//	ref := testutil.Members(s)       // map-based reference copy
//
// # Random Functions
//
//	fn := rng.RandomFunction(20, 16, 4) // 20 blocks, 16 vars, <=4 instrs per block
package testutil
