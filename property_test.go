// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flist_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"code.hybscloud.com/flist"
)

const propertyN = 1000

// randInts returns a random slice of length [0, 16) with values in [-1000, 1000].
func randInts(rng *rand.Rand) []int {
	out := make([]int, rng.IntN(16))
	for i := range out {
		out[i] = rng.IntN(2001) - 1000
	}
	return out
}

// --- Group 1: Persistence ---

// TestPropertyPersistence: deriving a list never changes its source.
func TestPropertyPersistence(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		xs := randInts(rng)
		l := flist.Make(xs...)
		derived := []*flist.List[int]{
			l.AppendRange(randInts(rng)...),
			l.AppendRange(randInts(rng)...),
			l.PrependRange(randInts(rng)...),
		}
		start := rng.IntN(len(xs) + 1)
		s, err := l.Slice(start, rng.IntN(len(xs)-start+1))
		if err != nil {
			t.Fatal(err)
		}
		derived = append(derived, s, s.Append(7))

		if !slices.Equal(l.Collect(), xs) || l.Len() != len(xs) {
			t.Fatalf("source changed: %v, want %v", l, xs)
		}
		for _, d := range derived {
			d.Release()
		}
		if !slices.Equal(l.Collect(), xs) || l.UnderlyingCapacity() != len(xs) {
			t.Fatalf("release changed source: %v (cap %d), want %v", l, l.UnderlyingCapacity(), xs)
		}
		l.Release()
	}
}

// TestPropertySlice: Slice(s, n) holds exactly the elements at [s, s+n).
func TestPropertySlice(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		xs := randInts(rng)
		l := flist.Make(xs...)
		start := rng.IntN(len(xs) + 1)
		n := rng.IntN(len(xs) - start + 1)
		s, err := l.Slice(start, n)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(s.Collect(), xs[start:start+n]) {
			t.Fatalf("Slice(%d, %d) of %v = %v", start, n, xs, s)
		}
		if _, err := l.Slice(start, len(xs)-start+1); err == nil {
			t.Fatalf("Slice(%d, %d) of %d elements should fail", start, len(xs)-start+1, len(xs))
		}
		s.Release()
		l.Release()
	}
}

// --- Group 2: Functor and Monad Laws ---

// TestPropertyFunctorIdentity: Map(l, id) ≡ l
func TestPropertyFunctorIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		l := flist.Make(randInts(rng)...)
		m := flist.Map(l, func(x int) int { return x })
		if !flist.Equal(l, m) {
			t.Fatalf("identity: %v != %v", m, l)
		}
		m.Release()
		l.Release()
	}
}

// TestPropertyFunctorComposition: Map(Map(l, f), g) ≡ Map(l, g∘f)
func TestPropertyFunctorComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) int { return x*3 + 1 }
	g := func(x int) int { return x - 7 }
	for range propertyN {
		l := flist.Make(randInts(rng)...)
		mf := flist.Map(l, f)
		left := flist.Map(mf, g)
		right := flist.Map(l, func(x int) int { return g(f(x)) })
		if !flist.Equal(left, right) {
			t.Fatalf("composition: %v != %v", left, right)
		}
		for _, x := range []*flist.List[int]{mf, left, right, l} {
			x.Release()
		}
	}
}

// TestPropertyBindAssociativity: Bind(Bind(m, f), g) ≡ Bind(m, x => Bind(f(x), g))
func TestPropertyBindAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) *flist.List[int] { return flist.Make(x, -x) }
	g := func(x int) *flist.List[int] { return flist.Make(x % 3) }
	for range propertyN {
		m := flist.Make(randInts(rng)...)
		mf := flist.Bind(m, f)
		left := flist.Bind(mf, g)
		right := flist.Bind(m, func(x int) *flist.List[int] {
			fx := f(x)
			defer fx.Release()
			return flist.Bind(fx, g)
		})
		if !flist.Equal(left, right) {
			t.Fatalf("associativity: %v != %v", left, right)
		}
		for _, x := range []*flist.List[int]{mf, left, right, m} {
			x.Release()
		}
	}
}

// --- Group 3: Folds ---

// TestPropertyFoldMapMatchesFoldl: FoldMap(l, Sum, f) ≡ Foldl(l, 0, (+)∘f)
func TestPropertyFoldMapMatchesFoldl(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	sq := func(x int) int { return x * x }
	for range propertyN {
		l := flist.Make(randInts(rng)...)
		a := flist.FoldMap(l, flist.Sum[int](), sq)
		b := flist.Foldl(l, 0, func(acc, x int) int { return acc + sq(x) })
		if a != b {
			t.Fatalf("FoldMap = %d, Foldl = %d", a, b)
		}
		l.Release()
	}
}

// TestPropertyFoldrReverse: Foldr(l, z, f) ≡ Foldl(Reverse(l), z, flip(f))
func TestPropertyFoldrReverse(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		l := flist.Make(randInts(rng)...)
		r := flist.Reverse(l)
		a := flist.Foldr(l, 1, func(x, acc int) int { return acc*31 + x })
		b := flist.Foldl(r, 1, func(acc, x int) int { return acc*31 + x })
		if a != b {
			t.Fatalf("Foldr = %d, Foldl(Reverse) = %d", a, b)
		}
		r.Release()
		l.Release()
	}
}

// --- Group 4: Equality ---

// TestPropertyCompareConsistent: Compare agrees with slices.Compare and Equal.
func TestPropertyCompareConsistent(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		xs, ys := randInts(rng), randInts(rng)
		if rng.IntN(4) == 0 {
			ys = slices.Clone(xs)
		}
		a, b := flist.Make(xs...), flist.Make(ys...)
		if got, want := flist.Compare(a, b), slices.Compare(xs, ys); got != want {
			t.Fatalf("Compare(%v, %v) = %d, want %d", xs, ys, got, want)
		}
		if flist.Equal(a, b) != slices.Equal(xs, ys) {
			t.Fatalf("Equal(%v, %v) disagrees with slices.Equal", xs, ys)
		}
		a.Release()
		b.Release()
	}
}
