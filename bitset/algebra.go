package bitset

// Add inserts element. It panics if element is outside [0, Len()).
func (s *BitSet) Add(element int) {
	s.mustContain(element)
	s.bmp[element>>3] |= 1 << (element & 7)
}

// Remove deletes element. It panics if element is outside [0, Len()).
func (s *BitSet) Remove(element int) {
	s.mustContain(element)
	s.bmp[element>>3] &^= 1 << (element & 7)
}

// Clear removes every member. Len() is unchanged and nothing is reallocated.
func (s *BitSet) Clear() {
	s.mustLive()
	clear(s.bmp)
}

// Fill inserts every element of [0, Len()).
func (s *BitSet) Fill() {
	s.mustLive()
	for i := range s.bmp {
		s.bmp[i] = 0xFF
	}
	s.normalize()
}

// Union returns a new set of length max(a.Len(), b.Len()) holding a ∪ b.
func Union(a, b *BitSet) *BitSet {
	a.mustLive()
	b.mustLive()
	if a.length < b.length {
		a, b = b, a
	}
	r := newSet(a.length)
	copy(r.bmp, a.bmp)
	for i, w := range b.bmp {
		r.bmp[i] |= w
	}
	r.normalize()
	return r
}

// Intersec returns a new set of length max(a.Len(), b.Len()) holding a ∩ b.
// Elements beyond the shorter operand are absent.
func Intersec(a, b *BitSet) *BitSet {
	a.mustLive()
	b.mustLive()
	r := newSet(max(a.length, b.length))
	n := min(len(a.bmp), len(b.bmp))
	for i := 0; i < n; i++ {
		r.bmp[i] = a.bmp[i] & b.bmp[i]
	}
	r.normalize()
	return r
}

// Difference returns a new set of length a.Len() holding a \ b.
func Difference(a, b *BitSet) *BitSet {
	r := a.Copy()
	r.DifferenceInPlace(b)
	return r
}

// IntersecInPlace sets s to s ∩ other, keeping the length of s.
// Members of s at or beyond other.Len() are removed.
func (s *BitSet) IntersecInPlace(other *BitSet) {
	s.mustLive()
	other.mustLive()
	n := min(len(s.bmp), len(other.bmp))
	for i := 0; i < n; i++ {
		s.bmp[i] &= other.bmp[i]
	}
	clear(s.bmp[n:])
	s.normalize()
}

// UnionInPlace sets s to s ∪ other, keeping the length of s.
// Members of other at or beyond s.Len() are ignored.
func (s *BitSet) UnionInPlace(other *BitSet) {
	s.mustLive()
	other.mustLive()
	n := min(len(s.bmp), len(other.bmp))
	for i := 0; i < n; i++ {
		s.bmp[i] |= other.bmp[i]
	}
	s.normalize()
}

// DifferenceInPlace sets s to s \ other, keeping the length of s.
func (s *BitSet) DifferenceInPlace(other *BitSet) {
	s.mustLive()
	other.mustLive()
	n := min(len(s.bmp), len(other.bmp))
	for i := 0; i < n; i++ {
		s.bmp[i] &^= other.bmp[i]
	}
}

// CopyFrom overwrites s with the members of src that fit in [0, s.Len()).
// No allocation takes place.
func (s *BitSet) CopyFrom(src *BitSet) {
	s.mustLive()
	src.mustLive()
	n := copy(s.bmp, src.bmp)
	clear(s.bmp[n:])
	s.normalize()
}
