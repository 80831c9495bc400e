// Package xbuild 提供编译期构建变体选择：整个二进制要么是捕获变体，要么是发布变体。
//
// # 概述
//
// tracekit 的堆栈捕获能力由构建变体决定，变体在编译期一次性选定，运行时不可变更：
//
//   - 捕获变体：debug/test 构建，xtraced 在构造时捕获调用栈
//   - 发布变体：release 构建，xtraced 退化为零开销包装，不引用任何捕获机制
//
// # 构建标签
//
// 变体由两个构建标签共同决定：
//
//   - tracedebug: 开发与测试构建的常规开关（对应 debug/test 构建剖面）
//   - traceforce: 强制启用开关，用于在 release 构建中临时打开捕获
//
// 捕获启用条件为 tracedebug || traceforce。本包用一对互补约束的文件
// （tracedebug || traceforce 与其否定）分别定义 CaptureEnabled 常量，
// 任意一次构建中恰好有一个文件参与编译：变体不可能缺失，也不可能同时
// 存在两份定义（fail-closed，重复定义或缺失定义都会直接编译失败）。
//
// # 使用方式
//
// 开发构建：
//
//	go build -tags tracedebug ./...
//
// 测试捕获变体（go test 本身不注入任何标签，test 剖面需显式传入）：
//
//	go test -tags tracedebug ./...
//
// release 构建不传标签；如需在 release 中强制打开捕获：
//
//	go build -tags traceforce ./...
//
// # 与 xtraced 的关系
//
// pkg/debug/xtraced 的两个实现文件使用与本包完全相同的标签表达式，
// 因此 CaptureEnabled 常量与实际链接进二进制的 Traced 实现永远一致。
package xbuild
