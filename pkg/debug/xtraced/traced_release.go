//go:build !tracedebug && !traceforce

package xtraced

import (
	"fmt"
	"log/slog"

	"github.com/omeyang/tracekit/pkg/debug/xstack"
)

// Traced 持有一个 T 值（发布变体）。
//
// 布局不变量：Traced[T] 与裸 T 大小完全一致，构造与访问不产生任何
// 额外指令。本文件只引用 xstack 的类型名以保持两个变体 API 一致，
// 不调用任何捕获或解析机制，也没有运行时变体判断。
type Traced[T any] struct {
	value T
}

// New 包装 value。发布变体不捕获调用栈，选项被忽略。
func New[T any](value T, _ ...Option) Traced[T] {
	return Traced[T]{value: value}
}

// Value 返回包装的值。
func (t Traced[T]) Value() T {
	return t.value
}

// Unwrap 返回包装的值。
func (t Traced[T]) Unwrap() T {
	return t.value
}

// Stack 返回 nil：发布变体从未捕获快照。
func (t Traced[T]) Stack() *xstack.Snapshot {
	return nil
}

// Resolve 返回 nil：发布变体没有可解析的快照。
func (t Traced[T]) Resolve() []xstack.Frame {
	return nil
}

// Fingerprint 返回 0：发布变体没有来源信息。
func (t Traced[T]) Fingerprint() uint64 {
	return 0
}

// String 渲染与 fmt.Sprint(值) 完全相同的内容，包装完全透明。
func (t Traced[T]) String() string {
	return fmt.Sprint(t.value)
}

// LogValue 实现 slog.LogValuer：只输出裸值。
func (t Traced[T]) LogValue() slog.Value {
	return slog.AnyValue(t.value)
}
