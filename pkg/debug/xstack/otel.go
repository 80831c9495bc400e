package xstack

import (
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// OpenTelemetry 属性 key 常量。
const (
	// AttrStackFrames 帧文本列表。
	AttrStackFrames = attribute.Key("stack.frames")
	// AttrStackDepth 帧数。
	AttrStackDepth = attribute.Key("stack.depth")
	// AttrStackFingerprint 地址序列指纹（十六进制字符串）。
	AttrStackFingerprint = attribute.Key("stack.fingerprint")
)

// SpanEventName 来源堆栈 Span 事件名。
const SpanEventName = "stack.origin"

// SpanEventAttrs 将帧序列转换为 OpenTelemetry 属性。
// 空帧序列返回 nil。
func SpanEventAttrs(frames []Frame) []attribute.KeyValue {
	if len(frames) == 0 {
		return nil
	}

	lines := make([]string, len(frames))
	for i, f := range frames {
		lines[i] = f.String()
	}
	return []attribute.KeyValue{
		AttrStackDepth.Int(len(frames)),
		AttrStackFrames.StringSlice(lines),
	}
}

// AddSpanEvent 把快照的来源堆栈作为事件挂到 span 上。
//
// span 未在记录（或为 nil）、快照为空时为 no-op。
// 事件属性包含帧文本、帧数与指纹，便于后端按指纹聚合相同来源。
func AddSpanEvent(span trace.Span, s *Snapshot) {
	if span == nil || !span.IsRecording() {
		return
	}
	frames := s.Resolve()
	if len(frames) == 0 {
		return
	}

	attrs := SpanEventAttrs(frames)
	attrs = append(attrs, AttrStackFingerprint.String(
		strconv.FormatUint(s.Fingerprint(), 16)))
	span.AddEvent(SpanEventName, trace.WithAttributes(attrs...))
}
