// wrap.go — the wrap capability and the capture/wrap entry points.
//
// Purpose
//   - One uniform operation, "append a frame, seeding a 1-frame Trace if the
//     input is still raw", usable at every propagation site regardless of
//     whether the value has been touched before.
//   - The capability is CLOSED: only *Traced implements the unexported
//     wrapTraced method, and every other error takes the raw branch of the
//     type switch. External types cannot claim to be wrappable.
//
// Background
//   - Each entry point captures its Frame at its own call site via the skip
//     accounting in frame.go; none of them ever records a location inside
//     this file.
//   - Wrap/MapWrap/ConvertWrap are meant to sit inline in propagation code
//     (`return nil, xgxtraced.Wrap(err)`); Wrapper produces a closure for
//     error-mapping pipelines while still capturing at the site where the
//     closure is written.
package xgxtraced

// wrapper is the closed wrap capability. Exactly two cases exist: a raw
// error (the default branch in WrapWith) and *Traced (the sole implementer
// below). The method is unexported so no third type can participate.
type wrapper interface {
	wrapTraced(f Frame) *Traced
}

// wrapTraced appends f to the already-captured Trace, leaving the inner
// error untouched. Copy-on-write: the receiver is not modified.
func (t *Traced) wrapTraced(f Frame) *Traced {
	return &Traced{err: t.err, trace: t.trace.Push(f)}
}

var _ wrapper = (*Traced)(nil)

// WrapWith applies the wrap capability to any error with an externally
// supplied Frame: an already-traced error grows its Trace by exactly f, and
// a raw error is paired with a fresh 1-frame Trace containing exactly f.
//
// Prefer New/Wrap, which capture the Frame for you; WrapWith exists for
// callers that obtained a Frame elsewhere (e.g. Capture in their own helper).
func WrapWith(err error, f Frame) *Traced {
	if w, ok := err.(wrapper); ok {
		return w.wrapTraced(f)
	}
	return &Traced{err: err, trace: append(newTrace(), f)}
}

// New wraps err with a Frame captured at the call site of New. A raw error
// gets a fresh 1-frame Trace; an already-traced error grows by one frame.
func New(err error) *Traced {
	return WrapWith(err, CaptureSkip(1))
}

// Wrap is New under the name propagation sites read naturally:
//
//	if err != nil {
//	    return nil, xgxtraced.Wrap(err)
//	}
//
// Wrapping a raw error and New-ing it are the same operation; both record
// exactly one frame, here.
func Wrap(err error) *Traced {
	return WrapWith(err, CaptureSkip(1))
}

// MapNew converts the inner error with convert, then wraps as New does,
// capturing a Frame at the call site of MapNew. If err is already traced,
// its Trace survives the conversion and then grows by one frame.
func MapNew(err error, convert func(error) error) *Traced {
	return WrapWith(convertInner(err, convert), CaptureSkip(1))
}

// MapWrap converts the inner error first (preserving any existing Trace),
// then appends a Frame captured at the call site of MapWrap. The propagation
// spelling of MapNew.
func MapWrap(err error, convert func(error) error) *Traced {
	return WrapWith(convertInner(err, convert), CaptureSkip(1))
}

// ConvertWrap appends a Frame captured at the call site of ConvertWrap, then
// converts the inner error. The convert/append order is the reverse of
// MapWrap's, but the conversion only ever touches the inner error and the
// appended frame only ever touches the Trace, so the observable result is
// identical; both spellings exist for call-shape parity.
func ConvertWrap(err error, convert func(error) error) *Traced {
	return WrapWith(err, CaptureSkip(1)).MapError(convert)
}

// Wrapper returns an error-mapping closure whose Frame is captured HERE, at
// the call site of Wrapper — not wherever the closure eventually runs. Use
// it when a pipeline wants a func(error) value:
//
//	res, err := step()
//	if err != nil {
//	    return retry(op, xgxtraced.Wrapper())
//	}
func Wrapper() func(error) *Traced {
	f := CaptureSkip(1)
	return func(err error) *Traced {
		return WrapWith(err, f)
	}
}

// convertInner applies convert to the inner error of a traced value (keeping
// its Trace) or to a raw error directly. Nil convert is the identity.
func convertInner(err error, convert func(error) error) error {
	if convert == nil {
		return err
	}
	if t, ok := err.(*Traced); ok {
		return t.MapError(convert)
	}
	return convert(err)
}
