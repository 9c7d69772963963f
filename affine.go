// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flist

// lease is the one-shot release state of a List.
// A lease starts live and is spent by the first end; every later end
// reports false, which is what makes Release idempotent.
//
// A lease is not synchronized. Lists follow a single-owner discipline and
// must not be released from one goroutine while another reads them.
type lease struct {
	spent bool
}

// end spends the lease.
// Returns true on the first call and false on every later call.
func (l *lease) end() bool {
	if l.spent {
		return false
	}
	l.spent = true
	return true
}

// check panics if the lease has been spent.
func (l *lease) check() {
	if l.spent {
		panic("flist: use of released list")
	}
}
