// Package bitset provides a fixed-length, byte-aligned bit vector used as the
// set primitive of the liveness analysis.
//
// Architecture:
//   - One byte buffer of exactly ceil(Len()/8) bytes, element i at bit i%8 of byte i/8
//   - Padding bits of the final byte are always zero
//   - Sets of different lengths compare and combine as if missing elements were absent
//
// Ownership:
//   - Every set has exactly one owner; copies are explicit (Copy)
//   - Union, Intersec and Difference allocate a new set; the *InPlace methods do not
//   - Free releases the buffer; any later use panics
//
// Out-of-range elements, negative lengths and use after Free are programming
// errors and panic, like slice indexing does. A BitSet is not safe for
// concurrent mutation.
package bitset
