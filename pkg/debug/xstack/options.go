package xstack

// defaultMaxDepth 默认捕获深度上限。
// 足以覆盖有意义的上下文，同时限制异常深调用链上的开销。
const defaultMaxDepth = 64

// maxDepthLimit 捕获深度硬上限，防止误配置导致超大缓冲区分配。
const maxDepthLimit = 1024

// Option 定义 Capture 的可选配置函数类型。
type Option func(*captureConfig)

// captureConfig 内部捕获配置。
type captureConfig struct {
	skip     int
	maxDepth int
}

// WithSkip 设置额外跳过的帧数。
//
// skip 以 Capture 调用方为基准：skip=0 时第 0 帧即 Capture 的调用点，
// skip=1 跳过调用方自身，依此类推。负值按 0 处理。
func WithSkip(skip int) Option {
	return func(cfg *captureConfig) {
		if skip > 0 {
			cfg.skip = skip
		}
	}
}

// WithMaxDepth 设置捕获深度上限。
// 非正值回退为默认值 64，超过 1024 时截断为 1024。
func WithMaxDepth(depth int) Option {
	return func(cfg *captureConfig) {
		switch {
		case depth <= 0:
			cfg.maxDepth = defaultMaxDepth
		case depth > maxDepthLimit:
			cfg.maxDepth = maxDepthLimit
		default:
			cfg.maxDepth = depth
		}
	}
}
