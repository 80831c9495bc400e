package xbuild

import "runtime/debug"

// Stack 在捕获变体下返回当前 goroutine 的格式化堆栈，发布变体下返回 nil。
//
// 设计决策: CaptureEnabled 是编译期常量，发布变体下整个分支会被链接器
// 消除，调用方无需再做变体判断。适用于"只在调试构建里顺带记一份堆栈"
// 的日志场景；需要结构化帧数据时应使用 pkg/debug/xstack。
func Stack() []byte {
	if CaptureEnabled {
		return debug.Stack()
	}
	return nil
}
