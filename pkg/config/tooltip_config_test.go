package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultTooltipConfig 测试默认配置值
func TestDefaultTooltipConfig(t *testing.T) {
	cfg := DefaultTooltipConfig()

	if cfg == nil {
		t.Fatal("DefaultTooltipConfig() returned nil")
	}
	if cfg.AnimationDuration != 0.2 {
		t.Errorf("AnimationDuration: got %v, want 0.2", cfg.AnimationDuration)
	}
	if cfg.HiddenValue != 0.1 {
		t.Errorf("HiddenValue: got %v, want 0.1", cfg.HiddenValue)
	}
	if !cfg.AnimationsEnabled {
		t.Error("AnimationsEnabled: got false, want true")
	}
	if cfg.DefaultOffsetX != 0 || cfg.DefaultOffsetY != 0 {
		t.Errorf("DefaultOffset: got (%v, %v), want (0, 0)", cfg.DefaultOffsetX, cfg.DefaultOffsetY)
	}
}

// TestParseTooltipConfig 测试完整 YAML 解析
func TestParseTooltipConfig(t *testing.T) {
	data := []byte(`
animationDuration: 0.35
hiddenValue: 0.05
animationsEnabled: true
defaultOffsetX: 4
defaultOffsetY: -2
`)
	cfg, err := ParseTooltipConfig(data)
	if err != nil {
		t.Fatalf("ParseTooltipConfig() error: %v", err)
	}

	if cfg.AnimationDuration != 0.35 {
		t.Errorf("AnimationDuration: got %v, want 0.35", cfg.AnimationDuration)
	}
	if cfg.HiddenValue != 0.05 {
		t.Errorf("HiddenValue: got %v, want 0.05", cfg.HiddenValue)
	}
	if !cfg.AnimationsEnabled {
		t.Error("AnimationsEnabled: got false, want true")
	}
	if cfg.DefaultOffsetX != 4 || cfg.DefaultOffsetY != -2 {
		t.Errorf("DefaultOffset: got (%v, %v), want (4, -2)", cfg.DefaultOffsetX, cfg.DefaultOffsetY)
	}
}

// TestParseTooltipConfigDefaults 测试缺失字段填充默认值
func TestParseTooltipConfigDefaults(t *testing.T) {
	cfg, err := ParseTooltipConfig([]byte(`animationsEnabled: true`))
	if err != nil {
		t.Fatalf("ParseTooltipConfig() error: %v", err)
	}

	if cfg.AnimationDuration != 0.2 {
		t.Errorf("AnimationDuration: got %v, want 0.2", cfg.AnimationDuration)
	}
	if cfg.HiddenValue != 0.1 {
		t.Errorf("HiddenValue: got %v, want 0.1", cfg.HiddenValue)
	}
}

// TestParseTooltipConfigInvalid 测试非法取值被拒绝
func TestParseTooltipConfigInvalid(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"NegativeDuration", `animationDuration: -1`},
		{"HiddenValueTooLarge", `hiddenValue: 1.5`},
		{"HiddenValueNegative", `hiddenValue: -0.1`},
		{"BadYAML", `animationDuration: [`},
	}

	for _, c := range cases {
		if _, err := ParseTooltipConfig([]byte(c.data)); err == nil {
			t.Errorf("%s: expected error, got nil", c.name)
		}
	}
}

// TestLoadTooltipConfig 测试从文件加载
func TestLoadTooltipConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tooltip.yaml")
	data := []byte("animationDuration: 0.3\nanimationsEnabled: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadTooltipConfig(path)
	if err != nil {
		t.Fatalf("LoadTooltipConfig() error: %v", err)
	}
	if cfg.AnimationDuration != 0.3 {
		t.Errorf("AnimationDuration: got %v, want 0.3", cfg.AnimationDuration)
	}
}

// TestLoadTooltipConfigMissingFile 测试文件不存在时返回错误
func TestLoadTooltipConfigMissingFile(t *testing.T) {
	if _, err := LoadTooltipConfig("/nonexistent/tooltip.yaml"); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}
