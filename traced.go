// traced.go — the Traced container pairing an error with its Trace.
//
// Scope (tiny core):
//   - One concrete container type; no error taxonomy, codes, or context
//     fields (those stay in xgx-error core).
//   - NON-MUTATING operations throughout: every "modification" returns a new
//     value, so the container is the sole owner of its error and Trace.
//   - Interop: Traced implements error and Unwrap, so errors.Is/As traverse
//     through it to the inner error.
package xgxtraced

// Traced pairs exactly one error value with exactly one Trace. The Trace
// reflects every wrap applied to reach the current value, and the container
// owns both exclusively: accessors hand out copies, never aliases.
//
// Construct via New/Wrap (capturing a frame here) or Compose (no capture);
// the zero value is not meaningful.
type Traced struct {
	err   error
	trace Trace
}

// Compose pairs err with an already-built Trace verbatim, capturing no new
// frame. It is the inverse of Split and the reconstruction path for callers
// that carried the pair across a boundary separately.
func Compose(err error, trace Trace) *Traced {
	return &Traced{err: err, trace: trace.Clone()}
}

// Split returns the container's two parts: the inner error and an owned copy
// of the Trace. Compose(Split(t)) is observably equal to t.
func (t *Traced) Split() (error, Trace) {
	return t.err, t.trace.Clone()
}

// Err returns the inner error without consuming the container.
func (t *Traced) Err() error { return t.err }

// Trace returns a copy of the captured Trace (copy-on-read; mutating the
// result does not affect the container).
func (t *Traced) Trace() Trace { return t.trace.Clone() }

// MapError returns a new container whose inner error is convert(inner) and
// whose Trace is exactly the receiver's — same frames, same order, no frame
// appended. This is the only operation family that never captures.
//
// A nil convert is treated as the identity conversion.
func (t *Traced) MapError(convert func(error) error) *Traced {
	err := t.err
	if convert != nil {
		err = convert(err)
	}
	return &Traced{err: err, trace: t.trace.Clone()}
}

// MapFrom applies convert to the inner error of t without touching its
// Trace. Free-function spelling of MapError for pipeline use.
func MapFrom(t *Traced, convert func(error) error) *Traced {
	return t.MapError(convert)
}

// Error returns the inner error's message, verbatim. Trace text is never
// included; request it explicitly via Trace().String() or Render.
func (t *Traced) Error() string {
	if t.err == nil {
		return "<nil>"
	}
	return t.err.Error()
}

// Unwrap exposes the inner error to stdlib traversal, so
// errors.Is(traced, sentinel) and errors.As observe the wrapped value.
func (t *Traced) Unwrap() error { return t.err }
