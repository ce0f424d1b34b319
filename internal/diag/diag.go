// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package diag provides a thin, opt-in structured-logging helper shared by
// trievec and diffvec. Both packages are libraries, not services: unless a
// caller explicitly supplies a zerolog.Logger, Logger is silent.
package diag

import "github.com/rs/zerolog"

// Logger wraps a zerolog.Logger for the handful of structural trace
// events trievec and diffvec can emit (tail promotion, tree growth,
// diff-chain rebase). The zero value is silent.
type Logger struct {
	log zerolog.Logger
}

// New wraps l. Pass zerolog.Nop() (the default, via the zero value) to
// disable tracing entirely.
func New(l zerolog.Logger) Logger {
	return Logger{log: l}
}

// Trace emits a trace-level structured event. It is always cheap to call:
// zerolog skips formatting entirely when the underlying logger's level
// excludes trace events, which is the default zero-value behavior.
func (l Logger) Trace(msg string, fields map[string]any) {
	ev := l.log.Trace()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}
