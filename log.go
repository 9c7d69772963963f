// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flist

import (
	"context"
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

// SetLogger installs the logger used for arena lifecycle records.
// Records are emitted at [slog.LevelDebug] when an arena is forked,
// compacted, or freed. A nil logger disables logging, which is the default.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

// debug emits a debug record if a logger is installed and enabled.
func debug(msg string, attrs ...slog.Attr) {
	l := logger.Load()
	if l == nil {
		return
	}
	ctx := context.Background()
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}
