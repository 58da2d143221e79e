package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/carousel/pkg/config"
)

// UserSettings 与画廊内容无关的用户偏好
type UserSettings struct {
	Fullscreen     bool `yaml:"fullscreen"`     // 启动时是否全屏
	ShowDebugPanel bool `yaml:"showDebugPanel"` // 启动时是否显示调试面板
}

// DefaultUserSettings 返回默认偏好
func DefaultUserSettings() *UserSettings {
	return &UserSettings{}
}

// SettingsManager 设置管理器
// 负责用户偏好和调试面板调过的运动参数的加载、保存和内存管理
//
// Carousel() 返回的指针在整个生命周期内不变：轮播模型和调试面板共享它，
// Load / ResetCarousel 都是原地覆盖。
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）

	settings *UserSettings
	defaults *config.CarouselSettings // 画廊配置中的参数，用于重置
	carousel *config.CarouselSettings // 当前生效的参数
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
	carouselProperty = "carousel"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//   - defaults: 画廊配置中的运动参数，已保存的参数覆盖在它之上
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: defaults 为 nil 时返回错误；加载失败只记录日志
func NewSettingsManager(gdataManager *gdata.Manager, defaults *config.CarouselSettings) (*SettingsManager, error) {
	if defaults == nil {
		return nil, fmt.Errorf("settings manager: nil carousel defaults")
	}
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultUserSettings(),
		defaults:     defaults.Clone(),
		carousel:     defaults.Clone(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置。
// 已保存的运动参数按字段覆盖默认值，未保存的字段保留默认值；
// 覆盖后的参数未通过 Validate 时整体回退到默认值。
//
// 返回：
//   - error: 如果读取、反序列化或验证失败返回错误
func (sm *SettingsManager) Load() error {
	*sm.settings = *DefaultUserSettings()
	*sm.carousel = *sm.defaults

	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		return nil
	}

	if err := sm.loadProp(settingsProperty, sm.settings); err != nil {
		*sm.settings = *DefaultUserSettings()
		return err
	}

	loaded := sm.defaults.Clone()
	if err := sm.loadProp(carouselProperty, loaded); err != nil {
		return err
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("saved carousel settings invalid: %w", err)
	}
	*sm.carousel = *loaded

	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// loadProp 读取一个属性并反序列化到 out；属性不存在时不修改 out
func (sm *SettingsManager) loadProp(prop string, out any) error {
	if !sm.gdataManager.ObjectPropExists(settingsObject, prop) {
		return nil
	}
	data, err := sm.gdataManager.LoadObjectProp(settingsObject, prop)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", prop, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", prop, err)
	}
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
//
// 返回：
//   - error: 如果序列化或保存失败返回错误
func (sm *SettingsManager) Save() error {
	// 降级模式：无法持久化，但不报错
	if sm.gdataManager == nil {
		return nil
	}

	if err := sm.saveProp(settingsProperty, sm.settings); err != nil {
		return err
	}
	if err := sm.saveProp(carouselProperty, sm.carousel); err != nil {
		return err
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

func (sm *SettingsManager) saveProp(prop string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", prop, err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, prop, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", prop, err)
	}
	return nil
}

// GetSettings 获取当前用户偏好
func (sm *SettingsManager) GetSettings() *UserSettings {
	return sm.settings
}

// Carousel 返回当前生效的运动参数（共享指针）
func (sm *SettingsManager) Carousel() *config.CarouselSettings {
	return sm.carousel
}

// ResetCarousel 把运动参数恢复为画廊配置中的值
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) ResetCarousel() {
	*sm.carousel = *sm.defaults
}

// MarshalCarousel 把当前运动参数序列化为 YAML（用于复制到剪贴板）
func (sm *SettingsManager) MarshalCarousel() ([]byte, error) {
	return yaml.Marshal(sm.carousel)
}

// SetFullscreen 设置全屏模式
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetShowDebugPanel 设置调试面板默认可见性
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetShowDebugPanel(show bool) {
	sm.settings.ShowDebugPanel = show
}
