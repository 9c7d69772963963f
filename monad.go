// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flist

// Functor and monad operations for lists.
//
// Minimal definition: Pure (unit) and Bind are necessary and sufficient.
// Map, Filter, and Concat are derived operations built directly on the
// arena so they copy each element at most once.
//
// Every result is a fresh List owned by the caller. Inputs are not consumed
// unless stated otherwise.

// Pure lifts a single value into a one-element List.
func Pure[T any](v T) *List[T] {
	return Make(v)
}

// Map returns a new List holding f applied to every element of l.
func Map[T, U any](l *List[T], f func(T) U) *List[U] {
	out := make([]U, 0, l.Len())
	for v := range l.Values() {
		out = append(out, f(v))
	}
	return adopt(out)
}

// Bind maps every element of l to a List and concatenates the results
// (monadic bind, or flat-map).
//
// Bind takes ownership of each List returned by f and releases it once its
// elements have been copied out.
func Bind[T, U any](l *List[T], f func(T) *List[U]) *List[U] {
	var out []U
	for v := range l.Values() {
		inner := f(v)
		out = append(out, inner.window()...)
		inner.Release()
	}
	return adopt(out)
}

// Filter returns a new List holding the elements of l for which keep
// returns true, in order.
func Filter[T any](l *List[T], keep func(T) bool) *List[T] {
	var out []T
	for v := range l.Values() {
		if keep(v) {
			out = append(out, v)
		}
	}
	return adopt(out)
}

// Concat returns a new List holding the elements of a followed by those of b.
//
// If a owns its arena's tail, b's elements are written in place after a's
// and the result shares a's arena.
func Concat[T any](a, b *List[T]) *List[T] {
	return a.AppendRange(b.window()...)
}

// Reverse returns a new List holding the elements of l in reverse order.
func Reverse[T any](l *List[T]) *List[T] {
	out := make([]T, 0, l.Len())
	for _, v := range l.Backward() {
		out = append(out, v)
	}
	return adopt(out)
}
