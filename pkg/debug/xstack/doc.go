// Package xstack 提供调用栈的捕获、惰性符号解析与格式化。
//
// # 概述
//
// xstack 封装 Go 运行时的栈回溯原语，是 tracekit 中唯一接触
// runtime.Callers / runtime.CallersFrames 的包：
//
//   - Capture: 立刻采集原始指令地址（廉价），不做符号解析
//   - Snapshot.Resolve: 按需解析符号/文件/行号，结果一次性缓存
//   - Frame.String / WriteFrames: 人类可读的帧格式化
//
// 符号、文件、行号的缺失是正常的终态而非错误（平台或构建限制），
// 格式化时以显式的 "<unknown>" 占位，绝不静默省略。
//
// # 惰性解析与并发
//
// Snapshot 的解析缓存采用 sync.Once 的一次性写入纪律：并发调用
// Resolve 只会触发一次符号解析，已解析的读取不会阻塞。除该缓存外
// 无任何共享可变状态，无全局注册表。
//
// # 集成
//
// 提供 slog 属性桥接（FrameAttrs）与 OpenTelemetry Span 事件桥接
// （AddSpanEvent），便于把来源堆栈挂到结构化日志或链路追踪上。
package xstack
