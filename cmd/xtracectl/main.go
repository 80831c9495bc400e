// xtracectl 是 tracekit 的命令行检查工具。
//
// 用法:
//
//	xtracectl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config   配置文件路径（.yaml/.yml/.json），提供 capture 的默认参数
//
// 命令:
//
//	variant        显示当前二进制的构建变体（捕获/发布）
//	capture        构造一个示例包装值并打印其来源堆栈
//	help           显示帮助信息
//
// variant 命令说明:
//
//	构建变体在编译期由构建标签选定（见 pkg/debug/xbuild）：
//
//	  go build -tags tracedebug ./cmd/xtracectl   # 捕获变体
//	  go build ./cmd/xtracectl                    # 发布变体
//	  go build -tags traceforce ./cmd/xtracectl   # release 中强制捕获
//
//	退出码可直接用于脚本判断当前二进制是否具备捕获能力。
//
// 退出码:
//
//	0: 命令执行成功（variant 命令: 捕获已启用）
//	1: 命令执行失败（variant 命令: 捕获未启用）
//	2: 参数错误（未知命令、非法 flag 等）
//
// 示例:
//
//	xtracectl variant                         # 查看构建变体
//	xtracectl capture                         # 打印示例来源堆栈
//	xtracectl capture --format json           # JSON 输出
//	xtracectl capture --depth 8 --value boom  # 限制深度、自定义值
//	xtracectl -c xtracectl.yaml capture       # 从配置文件读默认参数
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args))
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "xtracectl",
		Usage:   "tracekit 构建变体与来源堆栈检查工具",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（.yaml/.yml/.json）",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"tracekit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run(args []string) int {
	app := createApp()

	if err := app.Run(context.Background(), args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var exitCoder cli.ExitCoder
		if errors.As(err, &exitCoder) {
			// ExitErrHandler 已输出错误详情，此处仅设置退出码
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}
