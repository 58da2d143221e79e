package scenes

import (
	"errors"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/carousel/pkg/carousel"
	"github.com/decker502/carousel/pkg/config"
	"github.com/decker502/carousel/pkg/game"
	"github.com/decker502/carousel/pkg/render"
	"github.com/decker502/carousel/pkg/utils"
)

// ErrNoGallery 没有可显示的幻灯片（配置缺失或图片列表为空）
var ErrNoGallery = errors.New("gallery: no slides to show")

// GalleryScene 画廊场景
//
// 每帧流程：指针跟踪器采样输入 -> 轮播模型的输入方法写入目标值 ->
// Tick 积分 -> 渲染层读取结果绘制。整个过程在 ebiten 的主 goroutine 上完成。
type GalleryScene struct {
	gallery         *config.GalleryConfig
	settingsManager *game.SettingsManager

	carousel *carousel.Carousel
	tracker  *utils.PointerTracker

	camera   *render.Camera
	lighting *render.Lighting
	slides   *render.SlideRenderer
	titles   *render.TitleRenderer
	backdrop *render.Backdrop

	debug *debugPanel

	width, height int
}

// NewGalleryScene 创建画廊场景
//
// 参数：
//   - rm: 资源管理器，用于加载幻灯片图片和字体
//   - sm: 设置管理器，提供与调试面板共享的运动参数
//   - gallery: 画廊配置
//   - rng: 随机源，决定幻灯片相位和背景光点；nil 时使用时间种子
//
// 返回：
//   - ErrNoGallery: gallery 为 nil 或没有图片
//   - 图片加载失败不会返回错误，对应幻灯片以纯色绘制
func NewGalleryScene(rm *game.ResourceManager, sm *game.SettingsManager, gallery *config.GalleryConfig, rng *rand.Rand) (*GalleryScene, error) {
	if gallery == nil || len(gallery.Images) == 0 {
		return nil, ErrNoGallery
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	settings := sm.Carousel()

	c, err := carousel.New(settings, gallery.Geometry, rng)
	if err != nil {
		return nil, err
	}

	images, failed := rm.LoadGalleryImages(gallery.Images)
	textures := make([]*render.Texture, len(images))
	for i, img := range images {
		if img != nil {
			textures[i] = render.NewTexture(img, gallery.Geometry.Width, gallery.Geometry.Height)
		}
	}
	log.Printf("[GalleryScene] %d slides, %d images (%d failed)", gallery.Geometry.Count, len(images), failed)

	source, err := rm.LoadFontSource()
	if err != nil {
		return nil, err
	}
	panelFace, err := rm.LoadFont(debugFontSize)
	if err != nil {
		return nil, err
	}

	camera := render.NewCamera(gallery.Camera)
	lighting := render.NewLighting(gallery.Lighting)

	s := &GalleryScene{
		gallery:         gallery,
		settingsManager: sm,
		carousel:        c,
		tracker:         utils.NewPointerTracker(),
		camera:          camera,
		lighting:        lighting,
		slides:          render.NewSlideRenderer(camera, lighting, textures, config.MustColor(gallery.Colors.Untextured)),
		titles:          render.NewTitleRenderer(camera, gallery, settings, source),
		backdrop:        render.NewBackdrop(gallery, rng),
		debug:           newDebugPanel(sm, panelFace),
	}
	s.debug.visible = sm.GetSettings().ShowDebugPanel && !utils.IsMobile()
	s.Resize(camera.Width, camera.Height)
	return s, nil
}

// Carousel 返回场景的轮播模型
func (s *GalleryScene) Carousel() *carousel.Carousel {
	return s.carousel
}

// Resize 同步更新相机和剔除范围
func (s *GalleryScene) Resize(width, height int) {
	s.width, s.height = width, height
	if s.camera.Resize(width, height) {
		log.Printf("[GalleryScene] resize %dx%d, fov=%.1f", width, height, s.camera.FOV)
	}
	s.carousel.SetVisibleHalfWidth(s.camera.VisibleHalfWidth())
}

// Update 处理输入并推进运动模型
func (s *GalleryScene) Update(deltaTime float64, now time.Duration) {
	if !utils.IsMobile() {
		s.debug.update(now)
	}

	s.handlePointer(s.tracker.Poll(s.width, s.height), now)
	s.lighting.SetPointer(s.camera.PointerToNDC(s.tracker.Pointer()))

	s.carousel.Tick(deltaTime, now)
}

// Draw 绘制背景、幻灯片、标题和调试面板
func (s *GalleryScene) Draw(screen *ebiten.Image) {
	s.backdrop.Draw(screen)
	s.slides.Draw(screen, s.carousel.Slides())
	s.titles.Draw(screen, s.carousel.Slides())
	s.debug.draw(screen, s.carousel.State())
}

// SaveOnExit 保存调试面板中未保存的修改
func (s *GalleryScene) SaveOnExit() bool {
	if !s.debug.dirty {
		return true
	}
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[GalleryScene] Warning: failed to save settings: %v", err)
		return false
	}
	s.debug.dirty = false
	return true
}
