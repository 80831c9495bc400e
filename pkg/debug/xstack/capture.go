package xstack

import "runtime"

// 栈回溯原语函数变量，支持测试中 mock 替换以覆盖零帧等平台受限路径。
// 设计决策: 使用包级变量 mock 模式（与 resolver.go 的 resolvePCs 一致）。
// 注意：mock 测试不可使用 t.Parallel()，因为替换包级变量会引发竞态。
var callers = runtime.Callers

// Capture 捕获当前调用栈的原始指令地址，返回未解析的 Snapshot。
//
// 捕获总是成功：若底层回溯原语一帧都没有返回（平台限制或 skip 超出
// 栈深），得到的是合法的空 Snapshot，而非错误。符号解析被推迟到
// [Snapshot.Resolve] 或格式化时才进行。
//
// 第 0 帧是 Capture 的调用点（可用 WithSkip 继续上移）。
func Capture(opts ...Option) *Snapshot {
	cfg := captureConfig{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	// skip 基准修正：
	//   • +1 跳过 runtime.Callers 自身
	//   • +1 跳过 Capture
	// 之后第 0 帧恰好落在调用方的调用点。
	pc := make([]uintptr, cfg.maxDepth)
	n := callers(cfg.skip+2, pc)
	return &Snapshot{pcs: pc[:n]}
}
