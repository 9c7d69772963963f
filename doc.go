// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package flist provides a persistent, append-optimized list for Go.
//
// The core type [List] is an immutable window over a growable arena that
// several Lists may share. Deriving a List never changes the List it came
// from, yet appending to the most recently extended List costs amortized
// O(1) because it writes into the shared arena in place.
//
// # Sharing Model
//
// An arena holds a written region of elements and a registry of the Lists
// reading from it. A List is a triple of arena, offset, and length, and
// observes exactly arena[offset, offset+length).
//
//   - Tail ownership: a List whose window ends at the arena's written size
//     owns the tail. [List.Append] and [List.AppendRange] on the tail owner
//     write in place and return a List on the same arena.
//   - Fork: appending to any other List, and every [List.Prepend], copies
//     the window into a fresh arena first. The original arena is untouched.
//   - Slicing: [List.Slice] returns a List on the same arena; nothing is copied.
//
// Elements below an arena's written size are never overwritten while a List
// that covers them is registered, so every List keeps seeing the elements
// it was created with.
//
// # Ownership and Release
//
// Storage is reclaimed by explicit reference counting, not by the garbage
// collector alone. Every List obtained from this package must be released
// exactly once with [List.Release]:
//
//   - Release unregisters the List and compacts the arena right away to the
//     largest window end among the Lists still registered, or frees it if
//     none remain. [List.UnderlyingCapacity] observes the result.
//   - Release is idempotent; a second call does nothing.
//   - Any other use of a released List panics ("flist: use of released list").
//   - A List that is never released pins its arena at or above its window
//     end. This is a leak, not a crash.
//
// [Using] and [Scope] tie Release to a lexical scope.
//
// Lists are not safe for concurrent use. Two Lists that share an arena must
// not be appended to from different goroutines without external locking.
//
// # Read Contract
//
//   - [List.Len], [List.At], [List.Get], [List.First], [List.Last]
//   - [List.All], [List.Values], [List.Backward]: restartable iterators
//   - [List.Collect]: copy out as a slice
//   - [Sequence]: the interface collaborators accept
//
// A nil *List[T] is an empty List for every read operation.
//
// # Equality and Hashing
//
// Equality is structural: same length, pairwise-equal elements in order,
// regardless of arena or offset.
//
//   - [Equal], [EqualFunc], [EqualSeq]: compare against Lists or any iter.Seq
//   - [Compare]: lexicographic order
//   - [Hash], [HashFunc]: order-sensitive hash consistent with [Equal]
//
// # Folds
//
//   - [Foldl], [Foldr], [Reduce]
//   - [FoldMap] against a [Monoid]: [Sum], [Product], [And], [Or]
//
// # Functor and Monad
//
//   - [Pure], [Map], [Bind], [Filter], [Concat], [Reverse]
//   - [Either] with [TraverseEither] and [SequenceEither]
//   - [Writer] with a List output log: [ReturnWriter], [Tell], [BindWriter],
//     [ThenWriter], [MapWriter], [Listen], [Censor], [RunWriter], [ExecWriter]
//
// # Errors
//
// [List.Slice] returns an error wrapping [ErrOutOfRange] for a window that
// does not fit; it never clamps. [List.At] panics on an out-of-range index,
// like indexing a Go slice.
//
// # Logging
//
// [SetLogger] installs a [log/slog] logger that receives debug records for
// arena forks, compactions, and frees.
//
// # Example
//
//	fl := flist.Make(5, 6, 2, 8)
//	defer fl.Release()
//
//	fl2 := fl.Append(9) // in place: fl owns the tail
//	defer fl2.Release()
//
//	mid, _ := fl.Slice(1, 2) // [6 2], shares the arena
//	defer mid.Release()
//
//	mid2 := mid.Append(11) // fork: mid does not own the tail
//	defer mid2.Release()
//	// fl == [5 6 2 8], fl2 == [5 6 2 8 9], mid2 == [6 2 11]
package flist
