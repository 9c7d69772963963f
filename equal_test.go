// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flist_test

import (
	"slices"
	"strings"
	"testing"

	"code.hybscloud.com/flist"
)

func TestEqualAcrossHistories(t *testing.T) {
	direct := flist.Make(1, 2)
	defer direct.Release()

	base := flist.Make(1, 2, 3)
	defer base.Release()
	forked := base.Prepend(0) // [0 1 2 3] on a fresh arena
	defer forked.Release()
	sliced, _ := forked.Slice(1, 2)
	defer sliced.Release()

	if !flist.Equal(direct, sliced) {
		t.Fatalf("Equal(%v, %v) = false", direct, sliced)
	}
	if flist.Hash(direct) != flist.Hash(sliced) {
		t.Fatal("equal lists must hash equal")
	}
	if flist.Equal(direct, base) {
		t.Fatal("different lengths compared equal")
	}
}

func TestEqualSameArena(t *testing.T) {
	l := flist.Make(4, 4, 4, 4)
	defer l.Release()
	a, _ := l.Slice(0, 2)
	defer a.Release()
	b, _ := l.Slice(2, 2)
	defer b.Release()
	if !flist.Equal(a, b) {
		t.Fatal("disjoint windows with equal elements compare equal")
	}
}

func TestEqualNilAndEmpty(t *testing.T) {
	e := flist.Empty[int]()
	defer e.Release()
	if !flist.Equal(nil, e) {
		t.Fatal("nil and empty lists compare equal")
	}
	if flist.Hash[int](nil) != flist.Hash(e) {
		t.Fatal("nil and empty lists hash equal")
	}
}

func TestEqualFunc(t *testing.T) {
	a := flist.Make("A", "b")
	defer a.Release()
	b := flist.Make("a", "B")
	defer b.Release()
	if flist.Equal(a, b) {
		t.Fatal("case-sensitive Equal")
	}
	if !flist.EqualFunc(a, b, strings.EqualFold) {
		t.Fatal("EqualFunc with EqualFold")
	}
	n := flist.Make(1, 2)
	defer n.Release()
	if flist.EqualFunc(a, n, func(string, int) bool { return true }) {
		t.Fatal("EqualFunc ignores length mismatch")
	}
}

func TestEqualSeq(t *testing.T) {
	l := flist.Make(1, 2, 3)
	defer l.Release()

	if !flist.EqualSeq(l, slices.Values([]int{1, 2, 3})) {
		t.Fatal("EqualSeq with identical slice")
	}
	for _, other := range [][]int{{1, 2}, {1, 2, 3, 4}, {1, 2, 4}, nil} {
		if flist.EqualSeq(l, slices.Values(other)) {
			t.Fatalf("EqualSeq(%v, %v) = true", l, other)
		}
	}
	other := flist.Make(1, 2, 3)
	defer other.Release()
	if !flist.EqualSeq(l, other.Values()) {
		t.Fatal("EqualSeq against another list")
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b []int
		want int
	}{
		{nil, nil, 0},
		{[]int{1}, nil, 1},
		{[]int{1, 2}, []int{1, 2}, 0},
		{[]int{1, 2}, []int{1, 3}, -1},
		{[]int{1, 2, 0}, []int{1, 2}, 1},
		{[]int{2}, []int{1, 9, 9}, 1},
	}
	for _, c := range cases {
		a, b := flist.Make(c.a...), flist.Make(c.b...)
		if got := flist.Compare(a, b); got != c.want {
			t.Fatalf("Compare(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
		}
		a.Release()
		b.Release()
	}
}

func TestHashOrderSensitive(t *testing.T) {
	a := flist.Make(1, 2)
	defer a.Release()
	b := flist.Make(2, 1)
	defer b.Release()
	if flist.Hash(a) == flist.Hash(b) {
		t.Fatal("hash should depend on element order")
	}

	id := func(v int) uint64 { return uint64(v) }
	if flist.HashFunc(a, id) == flist.HashFunc(b, id) {
		t.Fatal("HashFunc should depend on element order")
	}
	c := flist.Make(1, 2)
	defer c.Release()
	if flist.HashFunc(a, id) != flist.HashFunc(c, id) {
		t.Fatal("HashFunc should be deterministic")
	}
}

func TestHashIgnoresTrailingArenaData(t *testing.T) {
	l := flist.Make(1, 2)
	defer l.Release()
	grown := l.AppendRange(3, 4, 5)
	defer grown.Release()
	fresh := flist.Make(1, 2)
	defer fresh.Release()
	if flist.Hash(l) != flist.Hash(fresh) {
		t.Fatal("hash must cover only the observable window")
	}
}
