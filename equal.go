// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flist

import (
	"cmp"
	"encoding/binary"
	"hash/maphash"
	"iter"

	"github.com/cespare/xxhash/v2"
)

// Structural equality, ordering, and hashing.
// All of them look only at length and elements in order, never at which
// arena or offset backs a List.

var hashSeed = maphash.MakeSeed()

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	wa, wb := a.window(), b.window()
	if len(wa) != len(wb) {
		return false
	}
	if len(wa) == 0 || &wa[0] == &wb[0] {
		return true
	}
	for i := range wa {
		if wa[i] != wb[i] {
			return false
		}
	}
	return true
}

// EqualFunc is like [Equal] but compares elements with eq.
func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	wa, wb := a.window(), b.window()
	if len(wa) != len(wb) {
		return false
	}
	for i := range wa {
		if !eq(wa[i], wb[i]) {
			return false
		}
	}
	return true
}

// EqualSeq reports whether l holds exactly the elements yielded by seq,
// in order. seq may be any finite ordered sequence.
func EqualSeq[T comparable](l *List[T], seq iter.Seq[T]) bool {
	w := l.window()
	i := 0
	for v := range seq {
		if i >= len(w) || w[i] != v {
			return false
		}
		i++
	}
	return i == len(w)
}

// Compare compares a and b lexicographically.
// Returns -1, 0, or +1 like [cmp.Compare]; a shorter prefix sorts first.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	wa, wb := a.window(), b.window()
	for i := range min(len(wa), len(wb)) {
		if c := cmp.Compare(wa[i], wb[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(wa), len(wb))
}

// Hash returns an order-sensitive hash of the elements of l.
// Equal lists hash equal within a process; the value is not stable
// across processes.
func Hash[T comparable](l *List[T]) uint64 {
	return HashFunc(l, func(v T) uint64 { return maphash.Comparable(hashSeed, v) })
}

// HashFunc is like [Hash] but hashes each element with h.
// The element hashes and the length are combined with xxhash.
func HashFunc[T any](l *List[T], h func(T) uint64) uint64 {
	w := l.window()
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(w)))
	_, _ = d.Write(buf[:])
	for _, v := range w {
		binary.LittleEndian.PutUint64(buf[:], h(v))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
