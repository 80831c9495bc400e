package xstack

import "testing"

// =============================================================================
// 捕获与解析基准测试
// =============================================================================

func BenchmarkCapture(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Capture()
	}
}

func BenchmarkCapture_ShallowDepth(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Capture(WithMaxDepth(8))
	}
}

func BenchmarkResolve_FirstCall(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		snap := Capture()
		_ = snap.Resolve()
	}
}

func BenchmarkResolve_Cached(b *testing.B) {
	snap := Capture()
	_ = snap.Resolve()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = snap.Resolve()
	}
}

func BenchmarkFingerprint(b *testing.B) {
	snap := Capture()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = snap.Fingerprint()
	}
}

func BenchmarkFormatFrames(b *testing.B) {
	frames := Capture().Resolve()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = FormatFrames(frames)
	}
}
