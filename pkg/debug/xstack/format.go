package xstack

import (
	"fmt"
	"io"
	"strings"
)

// WriteFrames 将帧序列逐行写入 w：
//
//	%4d  0x<地址> - <函数名> (<文件>:<行号>)
//
// 序号从 0 开始，最内层调用点（捕获点）在前。空序列不产生任何输出。
func WriteFrames(w io.Writer, frames []Frame) error {
	for i, f := range frames {
		if _, err := fmt.Fprintf(w, "%4d  %s\n", i, f); err != nil {
			return err
		}
	}
	return nil
}

// FormatFrames 返回 [WriteFrames] 的字符串形式。
func FormatFrames(frames []Frame) string {
	if len(frames) == 0 {
		return ""
	}
	var b strings.Builder
	// strings.Builder 的 Write 永不返回错误
	_ = WriteFrames(&b, frames)
	return b.String()
}
