// predicates.go — chain-aware accessors for traced errors.
//
// Scope:
//   - Zero-policy helpers answering "is there a trace in here, and what does
//     it say": IsTraced, TraceOf, LastFrame, Render.
//   - Interop-first: probe with errors.As so a *Traced is found even when
//     other wrappers (fmt.Errorf %w, custom Unwrap types) sit above it.
//
// Out of scope (by design):
//   - Frame filtering, trace truncation, log formatting policy.
package xgxtraced

import (
	"errors"
	"strings"
)

// IsTraced reports whether err is, or wraps, a traced error.
func IsTraced(err error) bool {
	if err == nil {
		return false
	}
	var t *Traced
	return errors.As(err, &t)
}

// TraceOf returns a copy of the Trace carried by err, following the Unwrap
// chain to the first *Traced it finds. ok is false when err carries none.
func TraceOf(err error) (tr Trace, ok bool) {
	if err == nil {
		return nil, false
	}
	var t *Traced
	if !errors.As(err, &t) {
		return nil, false
	}
	return t.Trace(), true
}

// LastFrame returns the most recently captured Frame in err's trace — the
// capture site closest to the observer — for use in log headlines.
func LastFrame(err error) (Frame, bool) {
	tr, ok := TraceOf(err)
	if !ok || len(tr) == 0 {
		return Frame{}, false
	}
	return tr[len(tr)-1], true
}

// Render returns the error message and its labelled trace, concatenated:
//
//	<message>
//	error trace:
//	<frames in capture order>
//
// For an untraced (or trace-less) error it returns just the message. This is
// the stock caller-side concatenation; the message and the trace never leak
// into each other's own renderings.
func Render(err error) string {
	if err == nil {
		return ""
	}
	tr, ok := TraceOf(err)
	if !ok || len(tr) == 0 {
		return err.Error()
	}
	var b strings.Builder
	b.WriteString(err.Error())
	b.WriteString("\nerror trace:\n")
	b.WriteString(tr.String())
	return b.String()
}
