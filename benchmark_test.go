package xgxtraced

import (
	"errors"
	"testing"
)

func BenchmarkCapture(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Capture()
	}
}

func BenchmarkNew(b *testing.B) {
	cause := errors.New("boom")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = New(cause)
	}
}

func BenchmarkWrap_ExistingTrace(b *testing.B) {
	base := New(errors.New("boom"))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Wrap(base)
	}
}

func BenchmarkMapWrap(b *testing.B) {
	base := New(errors.New("boom"))
	ident := func(err error) error { return err }
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = MapWrap(base, ident)
	}
}

func buildDeepTrace(depth int) *Traced {
	c := New(errors.New("boom"))
	for i := 1; i < depth; i++ {
		c = Wrap(c)
	}
	return c
}

func BenchmarkTraceRender_Deep(b *testing.B) {
	c := buildDeepTrace(32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Trace().String()
	}
}

func BenchmarkRender(b *testing.B) {
	c := buildDeepTrace(8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Render(c)
	}
}
