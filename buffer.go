// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flist

import (
	"log/slog"
	"sync/atomic"
)

// shrinkFloor is the backing capacity at or below which compaction
// truncates in place instead of reallocating.
const shrinkFloor = 64

var arenaIDs atomic.Uint64

// arena is the growable backing store shared by one or more Lists.
//
// store[:len(store)] is the written region; len(store) is the arena size.
// Capacity beyond it is reserve for in-place growth and holds no data any
// List can observe. Every registered List reads a window of the written
// region, so size is at least the largest window end, and equals it right
// after compact.
//
// Slots below size are never overwritten while a List that covers them is
// registered. Only the tail owner grows the store, and it writes strictly
// past the current size.
type arena[T any] struct {
	id    uint64
	store []T
	live  map[*List[T]]struct{}
}

// newArena allocates an arena whose store is the concatenation of parts.
// The parts are copied; the arena never aliases caller memory.
func newArena[T any](parts ...[]T) *arena[T] {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	store := make([]T, 0, n)
	for _, p := range parts {
		store = append(store, p...)
	}
	return adoptArena(store)
}

// adoptArena wraps store without copying.
// The caller must not retain store.
func adoptArena[T any](store []T) *arena[T] {
	return &arena[T]{
		id:    arenaIDs.Add(1),
		store: store,
		live:  make(map[*List[T]]struct{}, 1),
	}
}

// fork allocates a fresh arena holding the concatenation of parts.
// Used by appends and prepends that cannot extend a store in place.
func fork[T any](reason string, parts ...[]T) *arena[T] {
	a := newArena(parts...)
	debug("flist: fork",
		slog.Uint64("arena", a.id),
		slog.String("reason", reason),
		slog.Int("size", len(a.store)),
	)
	return a
}

// size returns the number of written slots.
func (a *arena[T]) size() int {
	return len(a.store)
}

// grow writes values at the current size.
// The caller must own the tail.
func (a *arena[T]) grow(values []T) {
	a.store = append(a.store, values...)
}

// view registers and returns a List over store[off:off+n].
func (a *arena[T]) view(off, n int) *List[T] {
	l := &List[T]{a: a, off: off, n: n}
	a.live[l] = struct{}{}
	return l
}

// unregister removes l from the registry and compacts.
func (a *arena[T]) unregister(l *List[T]) {
	delete(a.live, l)
	a.compact()
}

// watermark returns the largest window end over registered Lists.
func (a *arena[T]) watermark() int {
	w := 0
	for l := range a.live {
		w = max(w, l.off+l.n)
	}
	return w
}

// compact truncates the store to the watermark.
// An arena with no registered Lists is freed.
func (a *arena[T]) compact() {
	if len(a.live) == 0 {
		a.free()
		return
	}
	w := a.watermark()
	old := len(a.store)
	if w == old {
		return
	}
	// Drop element references past the watermark so they can be collected.
	clear(a.store[w:old])
	if c := cap(a.store); c > shrinkFloor && c > 2*w {
		store := make([]T, w)
		copy(store, a.store[:w])
		a.store = store
	} else {
		a.store = a.store[:w]
	}
	debug("flist: compact",
		slog.Uint64("arena", a.id),
		slog.Int("from", old),
		slog.Int("to", w),
		slog.Int("live", len(a.live)),
	)
}

// free releases the store.
func (a *arena[T]) free() {
	debug("flist: free",
		slog.Uint64("arena", a.id),
		slog.Int("size", len(a.store)),
	)
	clear(a.store)
	a.store = nil
	a.live = nil
}
