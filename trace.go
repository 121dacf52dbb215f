// trace.go — the append-only error trace for xgx-traced.
//
// Design:
//   - Internal representation: ordered []Frame, insertion order = capture
//     order, oldest frame first.
//   - Push is non-mutating: it returns a NEW Trace backed by a fresh array,
//     so two Traced values can never alias mutable frame storage (the same
//     clone-append rule xgx-error applies to its context fields).
//   - No reordering, deduplication, or capping. An unbounded chain of wraps
//     produces an unbounded Trace; bounds are the caller's policy.
//
// Rationale:
//   - Slice append may re-use capacity; sharing a backing array between two
//     independently-wrapped errors would let one overwrite the other's next
//     frame. Allocating on Push removes the hazard outright.
package xgxtraced

import (
	"strings"
	"sync/atomic"
)

// defaultFramesCapacity seeds the frame buffer of a freshly-started Trace.
// Tunable for applications whose propagation chains are reliably deeper than
// the default.
var defaultFramesCapacity atomic.Int64

func init() {
	defaultFramesCapacity.Store(10)
}

// DefaultFramesCapacity reports the seed capacity used for new Traces.
func DefaultFramesCapacity() int {
	return int(defaultFramesCapacity.Load())
}

// SetDefaultFramesCapacity sets the seed capacity used for new Traces.
// Values below zero are clamped to zero. Safe for concurrent use.
func SetDefaultFramesCapacity(n int) {
	if n < 0 {
		n = 0
	}
	defaultFramesCapacity.Store(int64(n))
}

// Trace is the ordered sequence of Frames an error passed through, oldest
// capture first. A Trace attached to a Traced error always has at least one
// Frame; the empty value exists only transiently, before the first push.
type Trace []Frame

// newTrace returns an empty Trace with the tunable seed capacity, ready for
// its first frame.
func newTrace() Trace {
	return make(Trace, 0, DefaultFramesCapacity())
}

// Len reports the number of captured frames.
func (tr Trace) Len() int { return len(tr) }

// Push returns a NEW Trace with f appended. The receiver is never modified
// and the result never shares a backing array with it.
func (tr Trace) Push(f Frame) Trace {
	out := make(Trace, len(tr), len(tr)+1)
	copy(out, tr)
	return append(out, f)
}

// Clone returns an independent copy of the Trace. Frames are immutable
// values, so a shallow element copy is a full copy.
func (tr Trace) Clone() Trace {
	if len(tr) == 0 {
		return nil
	}
	out := make(Trace, len(tr))
	copy(out, tr)
	return out
}

// String renders the frames in capture order, joined by newlines, with no
// header, footer, or trailing separator:
//
//	<function>
//	  at <file>:<line>
//	<function>
//	  at <file>:<line>
//
// Callers wanting a label (e.g. "error trace:") prepend it themselves; see
// Render for the stock combined form.
func (tr Trace) String() string {
	var b strings.Builder
	for i, f := range tr {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(f.String())
	}
	return b.String()
}
