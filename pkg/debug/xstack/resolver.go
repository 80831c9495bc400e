package xstack

import "runtime"

// 符号解析函数变量，支持测试中 mock 替换以统计解析次数、覆盖缺失路径。
// 注意：mock 测试不可使用 t.Parallel()（见 capture.go 的说明）。
var resolvePCs = runtimeResolve

// runtimeResolve 通过 runtime.CallersFrames 将原始地址解析为帧序列。
//
// 设计决策: 使用 CallersFrames 而非 FuncForPC，以正确展开内联帧。
// 因此返回的帧数可能多于输入地址数。解析不出的字段保持零值，
// 由 [Frame.String] 在渲染时替换为 [Unknown] 占位。
func runtimeResolve(pcs []uintptr) []Frame {
	if len(pcs) == 0 {
		return nil
	}

	iter := runtime.CallersFrames(pcs)
	out := make([]Frame, 0, len(pcs))
	for {
		fr, more := iter.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			Function: fr.Function,
			File:     fr.File,
			Line:     fr.Line,
		})
		if !more {
			break
		}
	}
	return out
}
