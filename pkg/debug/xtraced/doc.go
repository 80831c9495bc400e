// Package xtraced 提供可选携带构造点调用栈的值包装器 Traced[T]。
//
// # 概述
//
// Traced[T] 包装任意类型的一个值。构建变体（见 pkg/debug/xbuild）决定
// 它的实际形态：
//
//   - 捕获变体（-tags tracedebug 或 traceforce）：构造时额外捕获一份
//     调用栈快照，符号解析推迟到格式化或显式 Resolve 时进行
//   - 发布变体（默认）：只持有值本身，内存布局与裸 T 完全一致，
//     构造与访问不产生任何额外指令，不引用任何捕获机制
//
// 变体在编译期由构建标签一次性选定，没有运行时分支，发布构建因此
// 保持零开销。典型用途是让错误值记住自己的产生位置：
//
//	func load() xtraced.Traced[error] {
//	    return xtraced.New(errors.New("config missing"))
//	}
//
// 调试构建中打印该值会得到：
//
//	config missing at
//	   0  0x000000000049a1b2 - app.load (/src/app/load.go:12)
//	   1  0x0000000000498f04 - app.main (/src/app/main.go:31)
//
// 发布构建中打印只得到 "config missing"。
//
// # 格式化契约
//
// Traced[T] 实现 fmt.Stringer：捕获变体渲染 "<值> at\n" 加逐帧一行
// （序号、十六进制地址、函数名、文件:行号，缺失字段以 <unknown> 占位，
// 第 0 帧为 New 的调用点）；空快照只渲染 "<值> at\n"。发布变体渲染
// 与 fmt.Sprint(值) 完全相同的内容。
//
// # 并发
//
// Traced[T] 构造后不可变。快照的惰性解析由 sync.Once 保护
// （见 pkg/debug/xstack），跨 goroutine 共享同一实例是安全的。
package xtraced
