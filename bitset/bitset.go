package bitset

import (
	"bytes"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// BitSet is a set of integers in [0, Len()).
type BitSet struct {
	// bmp holds the members, LSB first. len(bmp) == ceil(length/8).
	bmp []byte

	length int
	freed  bool
}

// byteLen returns the number of bytes needed for length bits.
func byteLen(length int) int {
	return (length + 7) >> 3
}

// tailMask returns the mask of addressable bits in the final byte.
func tailMask(length int) byte {
	if r := length & 7; r != 0 {
		return byte(1)<<r - 1
	}
	return 0xFF
}

func newSet(length int) *BitSet {
	if length < 0 {
		panic(fmt.Sprintf("bitset: negative length %d", length))
	}
	return &BitSet{
		bmp:    make([]byte, byteLen(length)),
		length: length,
	}
}

// Make returns an empty set over [0, length). It panics if length is negative.
func Make(length int) *BitSet {
	return newSet(length)
}

// MakeFull returns a set containing every element of [0, length).
// It panics if length is negative.
func MakeFull(length int) *BitSet {
	s := newSet(length)
	for i := range s.bmp {
		s.bmp[i] = 0xFF
	}
	s.normalize()
	return s
}

// normalize forces the padding tail to zero.
//
//go:nosplit
func (s *BitSet) normalize() {
	if n := len(s.bmp); n > 0 {
		s.bmp[n-1] &= tailMask(s.length)
	}
}

func (s *BitSet) mustLive() {
	if s.freed {
		panic("bitset: use of freed set")
	}
}

func (s *BitSet) mustContain(element int) {
	s.mustLive()
	if uint(element) >= uint(s.length) {
		panic(fmt.Sprintf("bitset: element %d out of range [0, %d)", element, s.length))
	}
}

// Copy returns an independent duplicate of s.
func (s *BitSet) Copy() *BitSet {
	s.mustLive()
	c := newSet(s.length)
	copy(c.bmp, s.bmp)
	return c
}

// Free releases the storage of s. s must not be used afterwards.
func (s *BitSet) Free() {
	s.mustLive()
	s.bmp = nil
	s.length = 0
	s.freed = true
}

// Len returns the declared length.
func (s *BitSet) Len() int {
	s.mustLive()
	return s.length
}

// Bytes returns the backing buffer. The caller must not modify it.
func (s *BitSet) Bytes() []byte {
	s.mustLive()
	return s.bmp
}

// Contains reports whether element is a member.
// It panics if element is outside [0, Len()).
func (s *BitSet) Contains(element int) bool {
	s.mustContain(element)
	return s.bmp[element>>3]&(1<<(element&7)) != 0
}

// Equal reports whether a and b have the same members.
// Indices beyond the shorter set count as absent, so sets of different
// lengths can be equal.
func Equal(a, b *BitSet) bool {
	a.mustLive()
	b.mustLive()
	if len(a.bmp) > len(b.bmp) {
		a, b = b, a
	}
	if !bytes.Equal(a.bmp, b.bmp[:len(a.bmp)]) {
		return false
	}
	for _, w := range b.bmp[len(a.bmp):] {
		if w != 0 {
			return false
		}
	}
	return true
}

// FirstZero returns the smallest element not in s, or Len() if s is full.
func (s *BitSet) FirstZero() int {
	s.mustLive()
	for i, w := range s.bmp {
		if w == 0xFF {
			continue
		}
		// Padding bits are zero, so a full final byte reports an index >= length.
		return min(i<<3+bits.TrailingZeros8(^w), s.length)
	}
	return s.length
}

// NextSet returns the smallest member >= i, or Len() if there is none.
func (s *BitSet) NextSet(i int) int {
	s.mustLive()
	i = max(i, 0)
	if i >= s.length {
		return s.length
	}
	idx := i >> 3
	if w := s.bmp[idx] >> (i & 7); w != 0 {
		return i + bits.TrailingZeros8(w)
	}
	for idx++; idx < len(s.bmp); idx++ {
		if w := s.bmp[idx]; w != 0 {
			return idx<<3 + bits.TrailingZeros8(w)
		}
	}
	return s.length
}

// Count returns the number of members.
func (s *BitSet) Count() int {
	s.mustLive()
	n := 0
	for _, w := range s.bmp {
		n += bits.OnesCount8(w)
	}
	return n
}

// IsEmpty reports whether s has no members.
func (s *BitSet) IsEmpty() bool {
	s.mustLive()
	for _, w := range s.bmp {
		if w != 0 {
			return false
		}
	}
	return true
}

// ForEach calls fn for each member in ascending order until fn returns false.
func (s *BitSet) ForEach(fn func(element int) bool) {
	s.mustLive()
	for i, w := range s.bmp {
		for w != 0 {
			if !fn(i<<3 + bits.TrailingZeros8(w)) {
				return
			}
			w &= w - 1
		}
	}
}

// Elements returns the members in ascending order.
func (s *BitSet) Elements() []int {
	out := make([]int, 0, s.Count())
	s.ForEach(func(e int) bool {
		out = append(out, e)
		return true
	})
	return out
}

// String formats s as "{1, 3}".
func (s *BitSet) String() string {
	if s.freed {
		return "{freed}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	s.ForEach(func(e int) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(strconv.Itoa(e))
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
