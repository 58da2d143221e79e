// Package app 提供画廊应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"image/color"
	"io"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/carousel/pkg/config"
	"github.com/decker502/carousel/pkg/game"
	"github.com/decker502/carousel/pkg/scenes"
	"github.com/decker502/carousel/pkg/utils"
)

// maxDeltaTime 单帧时间步长上限（秒）
// 窗口拖动或切到后台后的第一帧不会一次推进太多
const maxDeltaTime = 0.1

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 画廊配置路径，为空时使用内嵌的 data/gallery.yaml
	ConfigPath string
	// Fullscreen 以全屏启动（也可由已保存的偏好开启）
	Fullscreen bool
	// Assets 幻灯片图片所在的文件系统，为 nil 时使用当前目录
	Assets fs.FS
}

// App 是画廊应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager

	start      time.Time
	lastUpdate time.Duration

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化画廊应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 画廊配置无效时不会返回错误：应用以空场景运行，日志中说明原因。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultGalleryConfigPath
	}
	assets := cfg.Assets
	if assets == nil {
		assets = os.DirFS(".")
	}

	gallery := loadGallery(configPath)
	defaults := config.DefaultCarouselSettings()
	if gallery != nil {
		defaults = gallery.Settings
	}

	settingsManager, err := game.NewSettingsManager(openStorage(), defaults)
	if err != nil {
		return nil, err
	}
	resourceManager := game.NewResourceManager(assets)
	background := config.MustColor(config.DefaultGalleryConfig().Colors.Background)

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	loaded := false
	sceneManager.SetSceneFactory(func(name string) game.Scene {
		if name != scenes.SceneGallery {
			return nil
		}
		// 重新加载时重新读取配置，读取失败沿用上一次的配置
		if loaded {
			if g := loadGallery(configPath); g != nil {
				gallery = g
			}
		}
		loaded = true
		s, err := scenes.NewGalleryScene(resourceManager, settingsManager, gallery, nil)
		if err != nil {
			log.Printf("[App] Warning: gallery unavailable: %v (showing empty scene)", err)
			return &scenes.EmptyScene{Background: background}
		}
		return s
	})
	sceneManager.LoadScene(scenes.SceneGallery)

	if cfg.Fullscreen || settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		start:           time.Now(),
	}, nil
}

// loadGallery 加载画廊配置，失败时返回 nil
func loadGallery(path string) *config.GalleryConfig {
	gallery, err := config.LoadGalleryConfig(path)
	if err != nil {
		log.Printf("[App] Warning: %v", err)
		return nil
	}
	log.Printf("[Config] Loaded gallery %s: %d images, %d slides", path, len(gallery.Images), gallery.Geometry.Count)
	return gallery
}

// openStorage 打开 gdata 存储，失败时返回 nil（设置只保存在内存中）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: failed to prepare storage dir: %v", err)
	}
	if path := utils.GetStoragePath(); path != "" {
		log.Printf("[App] Storage path: %s", path)
	}
	manager, err := gdata.Open(gdata.Config{
		AppName: config.StorageAppName,
	})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		return nil
	}
	return manager
}

// Update 推进一帧
//
// deltaTime 取真实经过的时间（上限 maxDeltaTime），
// now 是从应用启动开始的单调时钟，供输入窗口的截止时间使用。
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// F5 重新读取配置并重建场景
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		a.sceneManager.Reload()
	}

	now := time.Since(a.start)
	deltaTime := min((now - a.lastUpdate).Seconds(), maxDeltaTime)
	a.lastUpdate = now

	a.sceneManager.Update(deltaTime, now)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	if !fullscreen {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
	a.settingsManager.SetFullscreen(fullscreen)
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制缩放时的 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑屏幕尺寸跟随窗口尺寸
//
// 尺寸变化在这里同步传给场景，相机的宽高比和视角在下一次 Update 前就已更新。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Shutdown 在窗口关闭后保存场景和用户偏好
func (a *App) Shutdown() {
	if s, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		s.SaveOnExit()
	}
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}
