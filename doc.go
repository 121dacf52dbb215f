// doc.go — package documentation for xgx-traced
//
// Package xgxtraced augments arbitrary error values with an append-only
// sequence of call-site Frames, recorded at each point where an error is
// created or re-wrapped as it propagates up a call chain. It is the tracing
// sibling of the xgx-error core and shares its tenets:
//   - Ergonomic at call sites (small surface, clear semantics)
//   - Interoperable with the stdlib (errors.Is/As, fmt.Formatter)
//   - Policy-free (no logging/HTTP/retry rules in core; the zap adapter
//     lives in the tracedzap subpackage)
//
// # Why Not Stack Traces?
//
// A runtime stack walk answers "how did we get HERE", at capture cost and
// with frames the author never asked for. xgxtraced answers a different
// question: "which error-handling sites did this value pass through". Each
// New/Wrap call records exactly ONE Frame — the position of that call and
// nothing else — so the resulting Trace is deterministic, portable, and
// cheap. There is no stack unwinding, no depth bound to tune, and no
// symbolication beyond what runtime.Caller supplies at the capture site.
//
// # Capture Model
//
//	+---------------------------+------------------------------------------+
//	| Operation                 | Effect on the Trace                      |
//	+---------------------------+------------------------------------------+
//	| New(err) / Wrap(err)      | +1 Frame, captured at this call site.    |
//	|                           | Raw error → fresh 1-frame Trace.         |
//	| MapNew / MapWrap /        | Convert the inner error, then +1 Frame.  |
//	| ConvertWrap               | An existing Trace is preserved.          |
//	| Compose(err, trace)       | No capture; pairs the two verbatim.      |
//	| (*Traced).MapError        | No capture; Trace untouched.             |
//	| Wrapper()                 | Returns a closure; the Frame is captured |
//	|                           | where Wrapper() is written, not where    |
//	|                           | the closure later runs.                  |
//	+---------------------------+------------------------------------------+
//
// A Trace is never reordered, deduplicated, or capped: frame order is capture
// order, oldest first. Callers needing bounds must apply them outside.
//
// # Rendering
//
// A Traced error's Error() (and %v/%s) is the inner error's message,
// verbatim — never trace text. The Trace renders each Frame as
//
//	<function>
//	  at <file>:<line>
//
// joined by newlines, with no header or footer. Combine the two explicitly
// (or via Render / the %+v verb) when a log line should carry both:
//
//	if err != nil {
//	    return nil, xgxtraced.Wrap(err) // +1 frame at this line
//	}
//	...
//	fmt.Println(xgxtraced.Render(err))
//	// my error
//	// error trace:
//	// mypkg.load
//	//   at /src/mypkg/load.go:42
//	// mypkg.Run
//	//   at /src/mypkg/run.go:17
//
// # Ownership & Concurrency
//
// All operations are non-mutating (copy-on-write): wrapping, splitting, and
// converting return fresh values and never alter the receiver, so two Traced
// values never alias a mutable Trace and a shared error value may be read
// from any number of goroutines without synchronization.
package xgxtraced
