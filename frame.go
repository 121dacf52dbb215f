// frame.go — single-frame call-site capture for xgx-traced.
//
// Design goals:
//   - Exactly one frame per capture: runtime.Caller resolves the ONE call
//     site where a New/Wrap operation is written. No runtime.Callers walk,
//     no depth bound, no CallersFrames iteration.
//   - Helper transparency: skip accounting guarantees the recorded location
//     is the user-visible call site, never an internal helper of this
//     package.
//   - Stable rendering: the two-line "<function>\n  at <file>:<line>" shape
//     is load-bearing for Trace rendering and must not drift.
//
// References:
//   - runtime.Caller skip semantics (0 = the caller of Caller)
//   - runtime.FuncForPC for the enclosing function name
package xgxtraced

import (
	"runtime"
	"strconv"
	"strings"
)

// Frame is an immutable record of one capture point: the source position and
// enclosing function of the New/Wrap call that recorded it.
//
// Column is 1-based when present and 0 when the capture surface is line-only.
// runtime.Caller provides no column, so frames captured by this package are
// always line-only; the field exists so frames reconstructed from richer
// surfaces (via Compose) keep their full position. Line-only is a valid shape of
// the same type, not a separate kind of frame.
type Frame struct {
	File     string // source file path (as provided by runtime)
	Line     int    // 1-based line number
	Column   int    // 1-based column, 0 when unavailable
	Function string // fully-qualified function name (pkg.Func or recv.method)
}

// unknownFunction is recorded when the runtime cannot resolve a name for the
// capture PC (stripped binaries, exotic wrappers). The position fields stay
// zero in that case too, keeping the Frame total rather than fallible.
const unknownFunction = "unknown"

// Capture records a Frame at the caller's location.
//
// Use CaptureSkip when calling through your own helper so the frame lands at
// the helper's caller instead of inside the helper.
func Capture() Frame {
	return CaptureSkip(1)
}

// CaptureSkip records a Frame 'skip' call frames above the caller.
// skip = 0 is the caller of CaptureSkip itself.
//
// Skip accounting: runtime.Caller(0) would report this function, so we add
// +1 here; exported helpers in this package add +1 more per layer they
// introduce (the same model as xgx-error's stack capture helpers).
func CaptureSkip(skip int) Frame {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Frame{Function: unknownFunction}
	}
	function := unknownFunction
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
	}
	return Frame{File: file, Line: line, Function: function}
}

// String renders the frame as:
//
//	<function>
//	  at <file>:<line>
//
// with ":<column>" appended only when a column is present. The exact shape is
// part of the package contract; Trace rendering joins these verbatim.
func (f Frame) String() string {
	var b strings.Builder
	b.Grow(len(f.Function) + len(f.File) + 16)
	b.WriteString(f.Function)
	b.WriteString("\n  at ")
	b.WriteString(f.File)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(f.Line))
	if f.Column > 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(f.Column))
	}
	return b.String()
}
