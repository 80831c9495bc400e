//go:build tracedebug || traceforce

package xtraced

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/omeyang/tracekit/pkg/debug/xstack"
)

// Traced 持有一个 T 值及其构造点的调用栈快照（捕获变体）。
// 必须通过 [New] 创建；零值合法但不携带快照。构造后不可变。
type Traced[T any] struct {
	value T
	snap  *xstack.Snapshot
}

// New 包装 value，并在当前调用点捕获调用栈快照。
//
// 构造总是成功：底层回溯原语一帧未返回时快照为空，而非错误。
// 第 0 帧为 New 的调用点。只捕获原始地址，符号解析推迟到
// [Traced.Resolve] 或格式化时进行。
func New[T any](value T, opts ...Option) Traced[T] {
	cfg := applyOptions(opts)
	return Traced[T]{
		value: value,
		// +1 跳过 New 自身，第 0 帧落在 New 的调用点
		snap: xstack.Capture(
			xstack.WithSkip(cfg.skip+1),
			xstack.WithMaxDepth(cfg.maxDepth),
		),
	}
}

// Value 返回包装的值，不触碰快照。
func (t Traced[T]) Value() T {
	return t.value
}

// Unwrap 丢弃来源信息，返回包装的值。
func (t Traced[T]) Unwrap() T {
	return t.value
}

// Stack 返回构造时捕获的快照。零值 Traced 返回 nil。
func (t Traced[T]) Stack() *xstack.Snapshot {
	return t.snap
}

// Resolve 按需解析快照为帧序列，第 0 帧为 New 的调用点。
// 幂等且缓存（见 xstack.Snapshot.Resolve）。空快照返回 nil。
func (t Traced[T]) Resolve() []xstack.Frame {
	return t.snap.Resolve()
}

// Fingerprint 返回快照地址序列的指纹，用于聚合相同构造路径。
// 空快照返回 0。
func (t Traced[T]) Fingerprint() uint64 {
	return t.snap.Fingerprint()
}

// String 渲染值与来源堆栈：
//
//	<值> at
//	   0  0x<地址> - <函数名> (<文件>:<行号>)
//	   ...
//
// 空快照只渲染 "<值> at\n"，不输出占位帧。
func (t Traced[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v at\n", t.value)
	// strings.Builder 的写入永不失败
	_ = xstack.WriteFrames(&b, t.snap.Resolve())
	return b.String()
}

// LogValue 实现 slog.LogValuer：值与来源堆栈作为一个分组输出。
func (t Traced[T]) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 3)
	attrs = append(attrs, slog.Any("value", t.value))
	attrs = xstack.AppendFrameAttrs(attrs, t.snap.Resolve())
	return slog.GroupValue(attrs...)
}
