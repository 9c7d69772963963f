// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flist

import (
	"fmt"
	"iter"
	"strings"
)

// Sequence is the read contract collaborators consume.
// *List[T] implements it.
type Sequence[T any] interface {
	Len() int
	At(i int) T
	Values() iter.Seq[T]
}

var _ Sequence[int] = (*List[int])(nil)

// List is a persistent, append-optimized sequence.
//
// A List is a window [off, off+n) over an arena that other Lists may share.
// Structural operations never change an existing List; they return a new one.
// Appending to the List whose window ends at the arena's written size (the
// tail owner) extends the arena in place. Any other append, and every prepend,
// copies the window into a fresh arena.
//
// Every List returned by this package must be released exactly once with
// [List.Release]. An unreleased List pins its arena at or above its own
// window end; it leaks capacity but never corrupts data.
//
// A nil *List[T] is an empty list. It is never released and needs no Release.
type List[T any] struct {
	a     *arena[T]
	off   int
	n     int
	lease lease
}

// Make returns a new List holding a copy of elems.
func Make[T any](elems ...T) *List[T] {
	return newArena(elems).view(0, len(elems))
}

// Empty returns a new empty List.
func Empty[T any]() *List[T] {
	return Make[T]()
}

// adopt wraps store in a new List without copying.
// The caller must not retain store.
func adopt[T any](store []T) *List[T] {
	return adoptArena(store).view(0, len(store))
}

// mustLive panics if l has been released.
func (l *List[T]) mustLive() {
	l.lease.check()
}

// window returns the observable elements of l.
// The result is capped so that appending to it can never write into the arena.
func (l *List[T]) window() []T {
	if l == nil {
		return nil
	}
	l.mustLive()
	return l.a.store[l.off : l.off+l.n : l.off+l.n]
}

// Len returns the number of elements in l.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	l.mustLive()
	return l.n
}

// IsEmpty reports whether l has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// At returns the element at index i.
// Panics if i is out of range.
func (l *List[T]) At(i int) T {
	n := l.Len()
	if i < 0 || i >= n {
		panic(fmt.Sprintf("flist: index %d out of range [0:%d]", i, n))
	}
	return l.a.store[l.off+i]
}

// Get returns the element at index i and true, or zero and false if i is
// out of range.
func (l *List[T]) Get(i int) (T, bool) {
	if i < 0 || i >= l.Len() {
		var zero T
		return zero, false
	}
	return l.a.store[l.off+i], true
}

// First returns the first element and true, or zero and false if l is empty.
func (l *List[T]) First() (T, bool) {
	return l.Get(0)
}

// Last returns the last element and true, or zero and false if l is empty.
func (l *List[T]) Last() (T, bool) {
	return l.Get(l.Len() - 1)
}

// All returns an iterator over index-value pairs in order.
// The iterator is restartable.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range l.Len() {
			l.mustLive()
			if !yield(i, l.a.store[l.off+i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range l.Len() {
			l.mustLive()
			if !yield(l.a.store[l.off+i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from last to first.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := l.Len() - 1; i >= 0; i-- {
			l.mustLive()
			if !yield(i, l.a.store[l.off+i]) {
				return
			}
		}
	}
}

// Collect returns a copy of the elements of l as a slice.
func (l *List[T]) Collect() []T {
	w := l.window()
	out := make([]T, len(w))
	copy(out, w)
	return out
}

// Append returns a new List with v added at the end.
func (l *List[T]) Append(v T) *List[T] {
	return l.AppendRange(v)
}

// AppendRange returns a new List with values added at the end.
//
// If l owns its arena's tail, values are written in place and the result
// shares l's arena; this is amortized O(len(values)). Otherwise l's window is
// copied into a fresh arena first. l is unchanged either way.
func (l *List[T]) AppendRange(values ...T) *List[T] {
	if l == nil {
		return Make(values...)
	}
	l.mustLive()
	if l.OwnsTail() {
		l.a.grow(values)
		return l.a.view(l.off, l.n+len(values))
	}
	return fork("append", l.window(), values).view(0, l.n+len(values))
}

// Prepend returns a new List with v added at the front.
func (l *List[T]) Prepend(v T) *List[T] {
	return l.PrependRange(v)
}

// PrependRange returns a new List with values added at the front.
// Always copies l's window into a fresh arena.
func (l *List[T]) PrependRange(values ...T) *List[T] {
	if l == nil {
		return Make(values...)
	}
	l.mustLive()
	return fork("prepend", values, l.window()).view(0, l.n+len(values))
}

// Slice returns a new List over the length elements of l starting at start.
// The result shares l's arena; nothing is copied.
//
// Returns an error wrapping [ErrOutOfRange] if start or length is negative,
// or if start+length exceeds l.Len().
func (l *List[T]) Slice(start, length int) (*List[T], error) {
	n := l.Len()
	if start < 0 || length < 0 || start > n || length > n-start {
		return nil, fmt.Errorf("%w: slice [%d:+%d] of list with length %d", ErrOutOfRange, start, length, n)
	}
	if l == nil {
		return nil, nil
	}
	return l.a.view(l.off+start, length), nil
}

// Release relinquishes l's claim on its arena.
//
// The arena is compacted immediately to the largest window end of the Lists
// still registered on it, or freed if none remain. Release is idempotent:
// releasing an already released List does nothing. Any other use of l after
// Release panics.
func (l *List[T]) Release() {
	if l == nil || !l.lease.end() {
		return
	}
	a := l.a
	l.a = nil
	a.unregister(l)
}

// Released reports whether l has been released.
func (l *List[T]) Released() bool {
	return l != nil && l.lease.spent
}

// UnderlyingCapacity returns the written size of l's arena.
//
// The value is shared by every List registered on the same arena and may
// exceed l.Len(). Intended for diagnostics and tests.
func (l *List[T]) UnderlyingCapacity() int {
	if l == nil {
		return 0
	}
	l.mustLive()
	return l.a.size()
}

// OwnsTail reports whether l's window ends at its arena's written size,
// so that appending to l extends the arena in place.
func (l *List[T]) OwnsTail() bool {
	if l == nil {
		return false
	}
	l.mustLive()
	return l.off+l.n == l.a.size()
}

// SharesBuffer reports whether l and other read from the same arena.
func (l *List[T]) SharesBuffer(other *List[T]) bool {
	if l == nil || other == nil {
		return false
	}
	l.mustLive()
	other.mustLive()
	return l.a == other.a
}

// String formats l as its elements in brackets, like a Go slice.
func (l *List[T]) String() string {
	if l.Released() {
		return "[released]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range l.All() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}
