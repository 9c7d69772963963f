// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flist

import "errors"

// ErrOutOfRange is returned by [List.Slice] for a window that does not fit
// inside the list.
var ErrOutOfRange = errors.New("flist: out of range")

// Either represents a value that is either Left (error) or Right (success).
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left (error) value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{left: e}
}

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// MatchEither calls onLeft or onRight depending on which side e holds.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies f to the Right value.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMapEither sequences two Either computations.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// TraverseEither applies f to every element of l in order and collects the
// Right values into a new List.
// Stops at the first Left and returns it; no List is allocated in that case.
func TraverseEither[E, T, U any](l *List[T], f func(T) Either[E, U]) Either[E, *List[U]] {
	out := make([]U, 0, l.Len())
	for v := range l.Values() {
		r := f(v)
		if !r.isRight {
			return Left[E, *List[U]](r.left)
		}
		out = append(out, r.right)
	}
	return Right[E](adopt(out))
}

// SequenceEither turns a List of Either values into an Either of a List.
// Returns the first Left, or Right with all Right values in order.
func SequenceEither[E, A any](l *List[Either[E, A]]) Either[E, *List[A]] {
	return TraverseEither(l, func(e Either[E, A]) Either[E, A] { return e })
}
