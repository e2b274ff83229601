// Package config 提供提示框相关的配置结构与加载
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TooltipConfig 提示框行为配置
// 控制显示/隐藏动画的时长、起始值以及默认偏移
type TooltipConfig struct {
	// AnimationDuration 显示/隐藏动画时长（秒）
	AnimationDuration float64 `yaml:"animationDuration"`

	// HiddenValue 动画起点的透明度与缩放（接近 0 的小值）
	// 显示动画从 HiddenValue 推进到 1.0，隐藏动画反向
	HiddenValue float64 `yaml:"hiddenValue"`

	// AnimationsEnabled 是否启用出现/消失动画
	// 关闭时 Show/Hide 都走立即路径
	AnimationsEnabled bool `yaml:"animationsEnabled"`

	// DefaultOffsetX/Y 锚点对齐后的默认微调偏移（像素）
	DefaultOffsetX float64 `yaml:"defaultOffsetX"`
	DefaultOffsetY float64 `yaml:"defaultOffsetY"`
}

// DefaultTooltipConfig 返回默认配置
func DefaultTooltipConfig() *TooltipConfig {
	return &TooltipConfig{
		AnimationDuration: 0.2,
		HiddenValue:       0.1,
		AnimationsEnabled: true,
		DefaultOffsetX:    0,
		DefaultOffsetY:    0,
	}
}

// LoadTooltipConfig 从 YAML 文件加载提示框配置
// 参数：
//
//	filepath - 配置文件路径（相对或绝对路径）
//
// 返回：
//
//	*TooltipConfig - 解析后的配置对象
//	error - 文件读取或解析失败时返回错误
func LoadTooltipConfig(filepath string) (*TooltipConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tooltip config file %s: %w", filepath, err)
	}

	cfg, err := ParseTooltipConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid tooltip config in %s: %w", filepath, err)
	}
	return cfg, nil
}

// ParseTooltipConfig 从 YAML 字节流解析提示框配置
// 缺失的字段会被填充默认值
func ParseTooltipConfig(data []byte) (*TooltipConfig, error) {
	var cfg TooltipConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tooltip config YAML: %w", err)
	}

	applyTooltipDefaults(&cfg)

	if err := validateTooltipConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyTooltipDefaults 为缺失的可选字段设置默认值
// 保持旧配置文件可以正常加载
func applyTooltipDefaults(cfg *TooltipConfig) {
	if cfg.AnimationDuration == 0 {
		cfg.AnimationDuration = 0.2
	}
	if cfg.HiddenValue == 0 {
		cfg.HiddenValue = 0.1
	}
	// AnimationsEnabled 缺省为 false（bool 零值）时无法与显式 false 区分，
	// 提示框动画默认开启由 DefaultTooltipConfig 负责；YAML 文件需显式配置。
}

// validateTooltipConfig 验证配置字段取值范围
func validateTooltipConfig(cfg *TooltipConfig) error {
	if cfg.AnimationDuration < 0 {
		return fmt.Errorf("animationDuration must be >= 0, got %v", cfg.AnimationDuration)
	}
	if cfg.HiddenValue < 0 || cfg.HiddenValue >= 1 {
		return fmt.Errorf("hiddenValue must be in [0, 1), got %v", cfg.HiddenValue)
	}
	return nil
}
