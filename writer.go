// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flist

// Writer monad with a List as its output log.
//
// Sequencing appends the second log onto the first. Left-nested binds keep
// the accumulated log as its arena's tail owner, so each step costs only the
// length of the newly written output.
//
// Writer values are affine: BindWriter, MapWriter, Censor, and Listen consume
// their input, and the result owns the log. Use each Writer at most once.

// Pair is a tuple of two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Writer is a value of type A together with accumulated output of type W.
// A nil Output is an empty log.
type Writer[W, A any] struct {
	Value  A
	Output *List[W]
}

// ReturnWriter lifts a value into a Writer with empty output.
func ReturnWriter[W, A any](a A) Writer[W, A] {
	return Writer[W, A]{Value: a}
}

// Tell produces a Writer whose output is values.
func Tell[W any](values ...W) Writer[W, struct{}] {
	return Writer[W, struct{}]{Output: Make(values...)}
}

// BindWriter runs f on m's value and concatenates the two outputs.
func BindWriter[W, A, B any](m Writer[W, A], f func(A) Writer[W, B]) Writer[W, B] {
	n := f(m.Value)
	return Writer[W, B]{Value: n.Value, Output: joinOutput(m.Output, n.Output)}
}

// ThenWriter sequences two Writers, discarding the first value.
func ThenWriter[W, A, B any](m Writer[W, A], n Writer[W, B]) Writer[W, B] {
	return Writer[W, B]{Value: n.Value, Output: joinOutput(m.Output, n.Output)}
}

// joinOutput returns first followed by second and releases whichever input
// is not carried into the result.
func joinOutput[W any](first, second *List[W]) *List[W] {
	switch {
	case second.Len() == 0:
		second.Release()
		return first
	case first.Len() == 0:
		first.Release()
		return second
	}
	out := Concat(first, second)
	first.Release()
	second.Release()
	return out
}

// MapWriter applies f to the value, keeping the output.
func MapWriter[W, A, B any](m Writer[W, A], f func(A) B) Writer[W, B] {
	return Writer[W, B]{Value: f(m.Value), Output: m.Output}
}

// Listen pairs m's value with a view of its output.
// The view is a zero-copy slice owned by the caller, separate from the
// returned Writer's output.
func Listen[W, A any](m Writer[W, A]) Writer[W, Pair[A, *List[W]]] {
	seen, _ := m.Output.Slice(0, m.Output.Len())
	return Writer[W, Pair[A, *List[W]]]{
		Value:  Pair[A, *List[W]]{Fst: m.Value, Snd: seen},
		Output: m.Output,
	}
}

// Censor replaces m's output with f applied to it.
// f receives the output and returns a List; if it returns a different List,
// the original output is released.
func Censor[W, A any](m Writer[W, A], f func(*List[W]) *List[W]) Writer[W, A] {
	out := f(m.Output)
	if out != m.Output {
		m.Output.Release()
	}
	return Writer[W, A]{Value: m.Value, Output: out}
}

// RunWriter returns the value and the output of m.
// The caller owns the output.
func RunWriter[W, A any](m Writer[W, A]) (A, *List[W]) {
	return m.Value, m.Output
}

// ExecWriter returns only the output of m, discarding the value.
func ExecWriter[W, A any](m Writer[W, A]) *List[W] {
	return m.Output
}
