package scenes

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/carousel/pkg/carousel"
	"github.com/decker502/carousel/pkg/config"
	"github.com/decker502/carousel/pkg/game"
)

const (
	debugFontSize   = 13
	debugLineHeight = 17
	debugPanelX     = 12
	debugPanelY     = 12
	debugPanelW     = 340

	// 按住方向键时的重复节奏（帧）
	keyRepeatDelay    = 20
	keyRepeatInterval = 3

	statusDuration = 2 * time.Second
)

var (
	debugPanelBg    = color.NRGBA{R: 0, G: 0, B: 0, A: 170}
	debugTextColor  = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
	debugGroupColor = color.NRGBA{R: 140, G: 180, B: 255, A: 255}
	debugSelColor   = color.NRGBA{R: 255, G: 210, B: 90, A: 255}
)

// debugPanel 运行时调参面板
//
// F1 显示/隐藏；Up/Down 选择参数，Left/Right 调整（按住 Shift 时步长 ×10），
// S 保存，C 复制参数 YAML 到剪贴板，R 恢复画廊配置中的值。
type debugPanel struct {
	visible  bool
	selected int
	tunables []config.Tunable

	settingsManager *game.SettingsManager
	face            *text.GoTextFace

	dirty       bool // 有未保存的修改
	status      string
	statusUntil time.Duration
}

func newDebugPanel(sm *game.SettingsManager, face *text.GoTextFace) *debugPanel {
	return &debugPanel{
		tunables:        sm.Carousel().Tunables(),
		settingsManager: sm,
		face:            face,
	}
}

// debugKeys 面板响应的按键
var debugKeys = []ebiten.Key{
	ebiten.KeyF1,
	ebiten.KeyArrowUp, ebiten.KeyArrowDown,
	ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
	ebiten.KeyS, ebiten.KeyC, ebiten.KeyR,
}

// update 轮询键盘
func (p *debugPanel) update(now time.Duration) {
	if p.status != "" && now >= p.statusUntil {
		p.status = ""
	}
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for _, key := range debugKeys {
		if keyRepeated(key) {
			p.handleKey(key, shift, now)
		}
	}
}

// keyRepeated 刚按下或按住超过重复延迟时按固定间隔触发
func keyRepeated(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	switch key {
	case ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeyArrowUp, ebiten.KeyArrowDown:
		return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
	}
	return false
}

// handleKey 处理一次按键，返回是否被面板消费
func (p *debugPanel) handleKey(key ebiten.Key, shift bool, now time.Duration) bool {
	if key == ebiten.KeyF1 {
		p.visible = !p.visible
		p.settingsManager.SetShowDebugPanel(p.visible)
		return true
	}
	if !p.visible || len(p.tunables) == 0 {
		return false
	}

	steps := 1
	if shift {
		steps = 10
	}

	switch key {
	case ebiten.KeyArrowUp:
		p.selected = (p.selected - 1 + len(p.tunables)) % len(p.tunables)
	case ebiten.KeyArrowDown:
		p.selected = (p.selected + 1) % len(p.tunables)
	case ebiten.KeyArrowLeft:
		p.tunables[p.selected].Nudge(-steps)
		p.dirty = true
	case ebiten.KeyArrowRight:
		p.tunables[p.selected].Nudge(steps)
		p.dirty = true
	case ebiten.KeyS:
		if err := p.settingsManager.Save(); err != nil {
			log.Printf("[DebugPanel] Warning: failed to save settings: %v", err)
			p.setStatus("save failed", now)
		} else {
			p.dirty = false
			p.setStatus("saved", now)
		}
	case ebiten.KeyC:
		data, err := p.settingsManager.MarshalCarousel()
		if err != nil {
			log.Printf("[DebugPanel] Warning: failed to marshal settings: %v", err)
			p.setStatus("copy failed", now)
			break
		}
		if clipboardWriteText(string(data)) {
			p.setStatus("copied to clipboard", now)
		} else {
			p.setStatus("clipboard unavailable", now)
		}
	case ebiten.KeyR:
		p.settingsManager.ResetCarousel()
		p.dirty = true
		p.setStatus("reset to gallery defaults", now)
	default:
		return false
	}
	return true
}

func (p *debugPanel) setStatus(msg string, now time.Duration) {
	p.status = msg
	p.statusUntil = now + statusDuration
	log.Printf("[DebugPanel] %s", msg)
}

// draw 绘制面板
func (p *debugPanel) draw(screen *ebiten.Image, st carousel.MotionState) {
	if !p.visible {
		return
	}

	lines := 3 + len(p.tunables) + 3 // 状态行 + 参数 + 分组标题
	h := float32(lines*debugLineHeight + 16)
	vector.DrawFilledRect(screen, debugPanelX, debugPanelY, debugPanelW, h, debugPanelBg, false)

	x := float64(debugPanelX + 8)
	y := float64(debugPanelY + 6)
	line := func(s string, clr color.Color) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, s, p.face, op)
		y += debugLineHeight
	}

	line(fmt.Sprintf("pos %.3f -> %.3f  speed %.4f", st.CurrentPosition, st.TargetPosition, st.AutoScrollSpeed), debugTextColor)
	line(fmt.Sprintf("distortion %.3f -> %.3f  peak %.3f", st.CurrentDistortion, st.TargetDistortion, st.PeakVelocity), debugTextColor)

	group := ""
	for i, tn := range p.tunables {
		if tn.Group != group {
			group = tn.Group
			line(group, debugGroupColor)
		}
		clr := color.Color(debugTextColor)
		prefix := "  "
		if i == p.selected {
			clr = debugSelColor
			prefix = "> "
		}
		line(fmt.Sprintf("%s%-28s %.3f", prefix, tn.Name, *tn.Value), clr)
	}

	status := "F1 hide  S save  C copy  R reset"
	if p.status != "" {
		status = p.status
	}
	if p.dirty {
		status += "  *"
	}
	line(status, debugTextColor)
}
