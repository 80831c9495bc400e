package xtraced

// Option 定义 New 的可选捕获配置函数类型。
// 发布变体接受但完全忽略这些选项（不产生任何捕获开销）。
type Option func(*captureConfig)

// captureConfig 内部捕获配置，仅捕获变体读取。
type captureConfig struct {
	skip     int
	maxDepth int
}

// WithSkip 设置额外跳过的帧数。
// skip=0 时第 0 帧即 New 的调用点；封装 New 的辅助构造函数
// 可用 skip=1 让第 0 帧落到自己的调用方。负值按 0 处理。
func WithSkip(skip int) Option {
	return func(cfg *captureConfig) {
		if skip > 0 {
			cfg.skip = skip
		}
	}
}

// WithMaxDepth 设置捕获深度上限，语义与 xstack.WithMaxDepth 一致
// （非正值回退默认，超出硬上限截断）。
func WithMaxDepth(depth int) Option {
	return func(cfg *captureConfig) {
		cfg.maxDepth = depth
	}
}

// applyOptions 应用可选配置。
func applyOptions(opts []Option) captureConfig {
	var cfg captureConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
