// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flist

// Resource safety for list ownership.
// Release must run exactly once per List; these helpers tie it to a scope.

// Releaser is anything that relinquishes a resource on Release.
// *List[T] implements it for every T.
type Releaser interface {
	Release()
}

// Using runs use with l and releases l when use returns, even if it panics.
// l must not escape use.
func Using[T, R any](l *List[T], use func(*List[T]) R) R {
	defer l.Release()
	return use(l)
}

// Scope collects Lists and releases them together.
// Resources are released in reverse order of registration.
//
// The zero value is an empty, open Scope.
type Scope struct {
	items []Releaser
}

// Add registers r for release on Close.
func (s *Scope) Add(r Releaser) {
	s.items = append(s.items, r)
}

// Len returns the number of resources awaiting release.
func (s *Scope) Len() int {
	return len(s.items)
}

// Close releases every registered resource, most recent first, and empties
// the scope. Closing an empty scope does nothing.
func (s *Scope) Close() {
	for i := len(s.items) - 1; i >= 0; i-- {
		s.items[i].Release()
		s.items[i] = nil
	}
	s.items = s.items[:0]
}

// Track registers l with s and returns l, so it can wrap a constructor:
//
//	l := flist.Track(&s, flist.Make(1, 2, 3))
func Track[T any](s *Scope, l *List[T]) *List[T] {
	s.Add(l)
	return l
}
