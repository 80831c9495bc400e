//go:build !tracedebug && !traceforce

package xbuild

// CaptureEnabled 表示当前构建是否启用堆栈捕获。
// 本文件仅在既无 tracedebug 也无 traceforce 标签时参与编译。
const CaptureEnabled = false

// Profile 当前构建剖面名称。
const Profile = "release"
