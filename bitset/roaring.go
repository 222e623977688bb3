package bitset

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/liveset/internal/conv"
)

// ErrElementOutOfRange is returned when a roaring bitmap holds a value that
// does not fit the requested length.
var ErrElementOutOfRange = errors.New("bitset: element out of range")

// ToRoaring returns the members of s as a roaring bitmap.
func (s *BitSet) ToRoaring() (*roaring.Bitmap, error) {
	s.mustLive()
	if _, err := conv.IntToUint32(s.length); err != nil {
		return nil, fmt.Errorf("bitset: length not representable in roaring: %w", err)
	}
	rb := roaring.New()
	s.ForEach(func(e int) bool {
		rb.Add(uint32(e)) //nolint:gosec // bounded by length above
		return true
	})
	return rb, nil
}

// FromRoaring returns a set of the given length holding the values of rb.
// Every value of rb must be below length.
func FromRoaring(length int, rb *roaring.Bitmap) (*BitSet, error) {
	s := Make(length)
	it := rb.Iterator()
	for it.HasNext() {
		v, err := conv.Uint32ToInt(it.Next())
		if err != nil {
			return nil, err
		}
		if v >= length {
			return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrElementOutOfRange, v, length)
		}
		s.bmp[v>>3] |= 1 << (v & 7)
	}
	return s, nil
}
