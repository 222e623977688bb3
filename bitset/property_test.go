package bitset_test

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/liveset/bitset"
	"github.com/hupe1980/liveset/testutil"
)

func toRoaring(t *testing.T, s *bitset.BitSet) *roaring.Bitmap {
	t.Helper()
	rb, err := s.ToRoaring()
	require.NoError(t, err)
	return rb
}

// TestAlgebra_AgainstRoaring checks every binary operation against roaring
// on random operands of mixed lengths.
func TestAlgebra_AgainstRoaring(t *testing.T) {
	rng := testutil.NewRNG(42)
	lengths := []int{0, 1, 5, 8, 13, 64, 100, 257}

	for _, la := range lengths {
		for _, lb := range lengths {
			a := rng.RandomSet(la, 0.4)
			b := rng.RandomSet(lb, 0.4)
			ra, rb := toRoaring(t, a), toRoaring(t, b)

			u := bitset.Union(a, b)
			assert.Equal(t, max(la, lb), u.Len())
			assert.True(t, roaring.Or(ra, rb).Equals(toRoaring(t, u)), "union %d/%d", la, lb)

			i := bitset.Intersec(a, b)
			assert.Equal(t, max(la, lb), i.Len())
			assert.True(t, roaring.And(ra, rb).Equals(toRoaring(t, i)), "intersec %d/%d", la, lb)

			d := bitset.Difference(a, b)
			assert.Equal(t, la, d.Len())
			assert.True(t, roaring.AndNot(ra, rb).Equals(toRoaring(t, d)), "difference %d/%d", la, lb)

			in := a.Copy()
			in.IntersecInPlace(b)
			assert.Equal(t, la, in.Len())
			assert.True(t, roaring.And(ra, rb).Equals(toRoaring(t, in)), "intersec in place %d/%d", la, lb)

			assert.Equal(t, ra.Equals(rb), bitset.Equal(a, b), "equal %d/%d", la, lb)
		}
	}
}

func TestAlgebra_Laws(t *testing.T) {
	rng := testutil.NewRNG(7)

	for round := 0; round < 50; round++ {
		n := 1 + rng.Intn(200)
		a := rng.RandomSet(n, 0.3)
		b := rng.RandomSet(n, 0.5)
		c := rng.RandomSet(n, 0.7)

		// Commutativity
		assert.True(t, bitset.Equal(bitset.Union(a, b), bitset.Union(b, a)))
		assert.True(t, bitset.Equal(bitset.Intersec(a, b), bitset.Intersec(b, a)))

		// Associativity
		assert.True(t, bitset.Equal(
			bitset.Union(bitset.Union(a, b), c),
			bitset.Union(a, bitset.Union(b, c)),
		))
		assert.True(t, bitset.Equal(
			bitset.Intersec(bitset.Intersec(a, b), c),
			bitset.Intersec(a, bitset.Intersec(b, c)),
		))

		// Idempotence
		assert.True(t, bitset.Equal(bitset.Union(a, a), a))
		assert.True(t, bitset.Equal(bitset.Intersec(a, a), a))

		// Copy is equal and independent.
		cp := a.Copy()
		assert.True(t, bitset.Equal(cp, a))
		before := testutil.Members(a)
		cp.Add(rng.Intn(n))
		cp.Clear()
		assert.Equal(t, before, testutil.Members(a))
	}
}

func TestAdd_OnlyTouchesElement(t *testing.T) {
	rng := testutil.NewRNG(99)

	for round := 0; round < 20; round++ {
		n := 1 + rng.Intn(100)
		s := rng.RandomSet(n, 0.5)
		e := rng.Intn(n)
		before := testutil.Members(s)

		s.Add(e)

		assert.True(t, s.Contains(e))
		for i := 0; i < n; i++ {
			if i != e {
				assert.Equal(t, before[i], s.Contains(i), "element %d", i)
			}
		}
	}
}

func TestRoaring_RoundTrip(t *testing.T) {
	s := bitset.Make(70)
	for _, e := range []int{0, 9, 33, 69} {
		s.Add(e)
	}

	rb, err := s.ToRoaring()
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 9, 33, 69}, rb.ToArray())

	back, err := bitset.FromRoaring(70, rb)
	require.NoError(t, err)
	assert.True(t, bitset.Equal(s, back))
	assert.Equal(t, 70, back.Len())

	_, err = bitset.FromRoaring(50, rb)
	assert.ErrorIs(t, err, bitset.ErrElementOutOfRange)
}

func BenchmarkIntersecInPlace(b *testing.B) {
	rng := testutil.NewRNG(1)
	x := rng.RandomSet(4096, 0.5)
	y := rng.RandomSet(4096, 0.5)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.IntersecInPlace(y)
	}
}

func BenchmarkUnion(b *testing.B) {
	rng := testutil.NewRNG(1)
	x := rng.RandomSet(4096, 0.5)
	y := rng.RandomSet(4096, 0.5)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bitset.Union(x, y)
	}
}

func BenchmarkEqual(b *testing.B) {
	x := bitset.MakeFull(4096)
	y := bitset.MakeFull(8192)
	y.IntersecInPlace(x)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bitset.Equal(x, y)
	}
}
