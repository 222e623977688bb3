// Package conv provides checked conversions between Go's int and the uint32
// element type used by roaring bitmaps.
//
// Conversions that are provably safe by construction (loop indices bounded by
// a set length already checked once) use direct casts instead.
package conv
