// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flist

import "iter"

// Builder provides efficient incremental construction of a List.
// It buffers elements and creates the List when List is called, so no
// intermediate Lists are registered or released along the way.
//
// The zero value is an empty Builder ready to use.
type Builder[T any] struct {
	items []T
}

// NewBuilder creates a new Builder with room for capacityHint elements.
func NewBuilder[T any](capacityHint int) *Builder[T] {
	return &Builder[T]{items: make([]T, 0, max(capacityHint, 0))}
}

// Add appends values to the builder.
func (b *Builder[T]) Add(values ...T) {
	b.items = append(b.items, values...)
}

// AddSeq appends every value yielded by seq.
func (b *Builder[T]) AddSeq(seq iter.Seq[T]) {
	for v := range seq {
		b.items = append(b.items, v)
	}
}

// AddList appends the elements of l.
func (b *Builder[T]) AddList(l *List[T]) {
	b.items = append(b.items, l.window()...)
}

// Len returns the number of buffered elements.
func (b *Builder[T]) Len() int {
	return len(b.items)
}

// Reset discards all buffered elements.
func (b *Builder[T]) Reset() {
	clear(b.items)
	b.items = b.items[:0]
}

// List returns a List holding the buffered elements and resets the builder.
// The buffered storage becomes the List's arena; nothing is copied.
// The caller owns the result.
func (b *Builder[T]) List() *List[T] {
	l := adopt(b.items)
	b.items = nil
	return l
}
