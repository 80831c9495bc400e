package xstack

import (
	"fmt"
	"strconv"
)

// Unknown 是符号/文件信息缺失时的显式占位标记。
const Unknown = "<unknown>"

// Frame 表示调用栈中的一帧。
//
// PC 在捕获时即确定；Function/File/Line 由解析得到，可能永久缺失
// （为空字符串 / 0），缺失字段在格式化时渲染为 [Unknown]。
type Frame struct {
	PC       uintptr // 指令地址（返回地址）
	Function string  // 完整限定函数名（pkg.Func 或方法），未解析时为空
	File     string  // 源文件路径，未解析时为空
	Line     int     // 行号，未解析时为 0
}

// Resolved 报告该帧是否解析出了函数名。
func (f Frame) Resolved() bool {
	return f.Function != ""
}

// String 渲染单帧：
//
//	0x<16位十六进制地址> - <函数名> (<文件>:<行号>)
//
// 缺失字段以 [Unknown] 占位。
func (f Frame) String() string {
	name := f.Function
	if name == "" {
		name = Unknown
	}
	file := f.File
	if file == "" {
		file = Unknown
	}
	line := Unknown
	if f.Line > 0 {
		line = strconv.Itoa(f.Line)
	}
	return fmt.Sprintf("0x%016x - %s (%s:%s)", uint64(f.PC), name, file, line)
}
