package xstack

import "log/slog"

// slog 属性 key 常量。
const (
	// KeyStack 帧文本列表。
	KeyStack = "stack"
	// KeyStackDepth 帧数。
	KeyStackDepth = "stack_depth"
	// KeyStackFingerprint 地址序列指纹（十六进制字符串）。
	KeyStackFingerprint = "stack_fingerprint"
)

// AppendFrameAttrs 将帧序列的日志属性追加到现有切片。
// 零分配热路径优化：传入预分配的切片；空帧序列不追加任何属性。
func AppendFrameAttrs(attrs []slog.Attr, frames []Frame) []slog.Attr {
	if len(frames) == 0 {
		return attrs
	}

	lines := make([]string, len(frames))
	for i, f := range frames {
		lines[i] = f.String()
	}
	attrs = append(attrs,
		slog.Int(KeyStackDepth, len(frames)),
		slog.Any(KeyStack, lines),
	)
	return attrs
}

// FrameAttrs 将帧序列转换为 slog.Attr 切片。
// 空帧序列返回 nil，避免不必要的分配。
func FrameAttrs(frames []Frame) []slog.Attr {
	if len(frames) == 0 {
		return nil
	}
	return AppendFrameAttrs(make([]slog.Attr, 0, 2), frames)
}
