//go:build tracedebug || traceforce

package xbuild

// CaptureEnabled 表示当前构建是否启用堆栈捕获。
// 本文件仅在 tracedebug 或 traceforce 标签下参与编译。
const CaptureEnabled = true

// Profile 当前构建剖面名称。
const Profile = "debug"
