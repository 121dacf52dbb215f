// zap.go — zap fields for traced errors.
//
// xgxtraced core stays policy-free; this adapter is where logging opinion
// lives. It exposes a Trace as a structured zap array of frame objects, so
// downstream log pipelines can index on file/line/function instead of
// grepping a rendered string.
package tracedzap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xgx-io/xgx-traced"
)

// TraceKey is the field key Frames and Fields attach the trace under.
const TraceKey = "error_trace"

type frameMarshaler struct {
	f xgxtraced.Frame
}

func (m frameMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("function", m.f.Function)
	enc.AddString("file", m.f.File)
	enc.AddInt("line", m.f.Line)
	if m.f.Column > 0 {
		enc.AddInt("column", m.f.Column)
	}
	return nil
}

type traceMarshaler struct {
	tr xgxtraced.Trace
}

func (m traceMarshaler) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, f := range m.tr {
		if err := enc.AppendObject(frameMarshaler{f: f}); err != nil {
			return err
		}
	}
	return nil
}

// Trace returns a zap field carrying tr's frames, in capture order, under
// key. Each frame is an object with function/file/line (and column when the
// capture surface provided one).
func Trace(key string, tr xgxtraced.Trace) zap.Field {
	return zap.Array(key, traceMarshaler{tr: tr})
}

// Frames returns the trace carried by err as a zap field under TraceKey, or
// zap.Skip() when err carries no trace. Safe for any error value.
func Frames(err error) zap.Field {
	tr, ok := xgxtraced.TraceOf(err)
	if !ok || tr.Len() == 0 {
		return zap.Skip()
	}
	return Trace(TraceKey, tr)
}

// Fields returns the conventional pair for logging a traced error: the
// message under zap's standard "error" key, and the frames under TraceKey.
//
//	logger.Error("load failed", tracedzap.Fields(err)...)
func Fields(err error) []zap.Field {
	return []zap.Field{zap.Error(err), Frames(err)}
}
