// Package prefs 提供悬浮层偏好设置的加载与持久化
package prefs

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// OverlayPrefs 悬浮层全局偏好
// 注意：这些偏好是全局的，不绑定到特定的提示框实例
type OverlayPrefs struct {
	// AnimationsEnabled 是否启用提示框出现/消失动画
	AnimationsEnabled bool `yaml:"animationsEnabled"`

	// AnimationDuration 动画时长（秒），0.05 ~ 1.0
	AnimationDuration float64 `yaml:"animationDuration"`

	// TouchTooltips 触摸设备上是否启用提示框
	TouchTooltips bool `yaml:"touchTooltips"`
}

// DefaultPrefs 返回默认偏好
func DefaultPrefs() *OverlayPrefs {
	return &OverlayPrefs{
		AnimationsEnabled: true,
		AnimationDuration: 0.2,
		TouchTooltips:     true,
	}
}

// Manager 偏好管理器
// 负责悬浮层偏好的加载、保存和内存管理
type Manager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	prefs        *OverlayPrefs  // 当前偏好
}

// 存储路径常量
const (
	prefsObject   = "overlay"
	prefsProperty = "prefs"
)

// NewManager 创建偏好管理器
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（降级模式，仅内存偏好）
//
// 返回：
//   - *Manager: 偏好管理器实例
//   - error: 加载已保存偏好失败时返回错误（不影响创建）
func NewManager(gdataManager *gdata.Manager) (*Manager, error) {
	m := &Manager{
		gdataManager: gdataManager,
		prefs:        DefaultPrefs(),
	}

	if err := m.Load(); err != nil {
		// 加载失败不是致命错误，使用默认偏好
		log.Printf("[Prefs] Warning: Failed to load prefs: %v (using defaults)", err)
	}

	return m, nil
}

// Load 从 gdata 加载偏好
// gdataManager 为 nil 或属性不存在时使用默认偏好
func (m *Manager) Load() error {
	if m.gdataManager == nil {
		m.prefs = DefaultPrefs()
		return nil
	}

	if !m.gdataManager.ObjectPropExists(prefsObject, prefsProperty) {
		m.prefs = DefaultPrefs()
		return nil
	}

	data, err := m.gdataManager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		m.prefs = DefaultPrefs()
		return fmt.Errorf("failed to load overlay prefs: %w", err)
	}

	var loaded OverlayPrefs
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		m.prefs = DefaultPrefs()
		return fmt.Errorf("failed to unmarshal overlay prefs: %w", err)
	}

	m.prefs = &loaded
	log.Printf("[Prefs] Overlay prefs loaded successfully")
	return nil
}

// Save 保存偏好到 gdata
// gdataManager 为 nil 时返回 nil（降级模式，不报错）
func (m *Manager) Save() error {
	if m.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(m.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal overlay prefs: %w", err)
	}

	if err := m.gdataManager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("failed to save overlay prefs: %w", err)
	}

	log.Printf("[Prefs] Overlay prefs saved successfully")
	return nil
}

// GetPrefs 获取当前偏好
func (m *Manager) GetPrefs() *OverlayPrefs {
	return m.prefs
}

// SetAnimationsEnabled 设置动画开关
// 注意：仅修改内存中的偏好，需调用 Save() 持久化
func (m *Manager) SetAnimationsEnabled(enabled bool) {
	m.prefs.AnimationsEnabled = enabled
}

// SetAnimationDuration 设置动画时长
// 时长会被限制在 0.05 ~ 1.0 秒范围内
// 注意：仅修改内存中的偏好，需调用 Save() 持久化
func (m *Manager) SetAnimationDuration(seconds float64) {
	m.prefs.AnimationDuration = clampDuration(seconds)
}

// SetTouchTooltips 设置触摸设备上的提示框开关
// 注意：仅修改内存中的偏好，需调用 Save() 持久化
func (m *Manager) SetTouchTooltips(enabled bool) {
	m.prefs.TouchTooltips = enabled
}

// clampDuration 把动画时长限制在 0.05 ~ 1.0 秒范围内
func clampDuration(seconds float64) float64 {
	if seconds < 0.05 {
		return 0.05
	}
	if seconds > 1.0 {
		return 1.0
	}
	return seconds
}
