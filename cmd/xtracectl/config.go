package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// 输出格式常量。
const (
	formatText = "text"
	formatJSON = "json"
)

var (
	// ErrUnsupportedConfigFormat 表示配置文件扩展名不受支持。
	ErrUnsupportedConfigFormat = errors.New("xtracectl: unsupported config format (expected .yaml/.yml/.json)")

	// ErrConfigLoadFailed 表示配置文件读取或解析失败。
	ErrConfigLoadFailed = errors.New("xtracectl: config load failed")
)

// captureDefaults capture 命令的默认参数，可由配置文件提供、命令行覆盖。
type captureDefaults struct {
	Depth  int    `koanf:"depth"`
	Skip   int    `koanf:"skip"`
	Format string `koanf:"format"`
	Value  string `koanf:"value"`
}

// defaultCaptureDefaults 无配置文件时的缺省值。
func defaultCaptureDefaults() *captureDefaults {
	return &captureDefaults{
		Depth:  0, // 0 = xstack 默认深度
		Skip:   0,
		Format: formatText,
		Value:  "123",
	}
}

// loadConfig 从 path 加载 capture 默认参数；path 为空时返回缺省值。
// 根据扩展名选择解析器（.yaml/.yml 或 .json）。
func loadConfig(path string) (*captureDefaults, error) {
	cfg := defaultCaptureDefaults()
	if path == "" {
		return cfg, nil
	}

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = kyaml.Parser()
	case ".json":
		parser = kjson.Parser()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigLoadFailed, err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigLoadFailed, err)
	}
	if err := k.Unmarshal("capture", cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigLoadFailed, err)
	}

	// 配置文件中留空的字段保持缺省
	if cfg.Format == "" {
		cfg.Format = formatText
	}
	return cfg, nil
}
