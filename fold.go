// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flist

// Monoid is a neutral value paired with an associative combining function.
// Combine(Empty, x) and Combine(x, Empty) must both equal x.
type Monoid[M any] struct {
	Empty   M
	Combine func(M, M) M
}

// Number is the set of built-in numeric types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum is the additive monoid.
func Sum[N Number]() Monoid[N] {
	return Monoid[N]{Empty: 0, Combine: func(a, b N) N { return a + b }}
}

// Product is the multiplicative monoid.
func Product[N Number]() Monoid[N] {
	return Monoid[N]{Empty: 1, Combine: func(a, b N) N { return a * b }}
}

// And is the conjunction monoid.
func And() Monoid[bool] {
	return Monoid[bool]{Empty: true, Combine: func(a, b bool) bool { return a && b }}
}

// Or is the disjunction monoid.
func Or() Monoid[bool] {
	return Monoid[bool]{Empty: false, Combine: func(a, b bool) bool { return a || b }}
}

// Foldl combines the elements of l from the left:
// f(...f(f(z, l[0]), l[1])..., l[n-1]).
func Foldl[T, B any](l *List[T], z B, f func(B, T) B) B {
	acc := z
	for v := range l.Values() {
		acc = f(acc, v)
	}
	return acc
}

// Foldr combines the elements of l from the right:
// f(l[0], f(l[1], ...f(l[n-1], z)...)).
// Runs in constant stack depth.
func Foldr[T, B any](l *List[T], z B, f func(T, B) B) B {
	acc := z
	for _, v := range l.Backward() {
		acc = f(v, acc)
	}
	return acc
}

// Reduce folds l from the left using its first element as the seed.
// Returns zero and false if l is empty.
func Reduce[T any](l *List[T], f func(T, T) T) (T, bool) {
	acc, ok := l.First()
	if !ok {
		return acc, false
	}
	for i, v := range l.All() {
		if i > 0 {
			acc = f(acc, v)
		}
	}
	return acc, true
}

// FoldMap maps every element of l into m and combines the results in order.
// Returns m.Empty for an empty list.
func FoldMap[T, M any](l *List[T], m Monoid[M], f func(T) M) M {
	acc := m.Empty
	for v := range l.Values() {
		acc = m.Combine(acc, f(v))
	}
	return acc
}
