// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// WheelPixelScale ebiten 滚轮偏移（行）到像素的换算
//
// ebiten 的滚轮偏移方向与像素滚动量相反：向右滚动时 xoff < 0。
const WheelPixelScale = 100.0

// PointerEventKind 指针事件类型
type PointerEventKind int

const (
	// PointerBegin 按下/触摸开始
	PointerBegin PointerEventKind = iota
	// PointerMove 按住移动
	PointerMove
	// PointerEnd 释放
	PointerEnd
	// PointerCancel 鼠标拖拽中离开交互区域
	PointerCancel
	// PointerWheel 滚轮/触控板滚动
	PointerWheel
)

func (k PointerEventKind) String() string {
	switch k {
	case PointerBegin:
		return "begin"
	case PointerMove:
		return "move"
	case PointerEnd:
		return "end"
	case PointerCancel:
		return "cancel"
	case PointerWheel:
		return "wheel"
	}
	return "unknown"
}

// PointerEvent 统一后的指针事件
type PointerEvent struct {
	Kind  PointerEventKind
	Touch bool // 是否来自触摸

	X, Y int

	// 滚轮像素位移（仅 PointerWheel），正值表示向右/向下滚动
	WheelX, WheelY float64
}

// TouchPoint 一个活动触点
type TouchPoint struct {
	ID   ebiten.TouchID
	X, Y int
}

// PointerSample 一帧的原始指针输入
type PointerSample struct {
	Touches []TouchPoint

	MousePressed   bool
	MouseX, MouseY int

	// 交互区域尺寸；为 0 时不做越界检测
	Width, Height int

	// ebiten.Wheel() 的原始偏移
	WheelX, WheelY float64
}

func (s PointerSample) mouseInside() bool {
	if s.Width <= 0 || s.Height <= 0 {
		return true
	}
	return s.MouseX >= 0 && s.MouseX < s.Width && s.MouseY >= 0 && s.MouseY < s.Height
}

// SamplePointer 读取当前帧的 ebiten 输入
func SamplePointer(width, height int) PointerSample {
	s := PointerSample{Width: width, Height: height}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		s.Touches = append(s.Touches, TouchPoint{ID: id, X: x, Y: y})
	}
	s.MousePressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.WheelX, s.WheelY = ebiten.Wheel()
	return s
}

// ============================================================================
// 拖拽状态管理器 - 把每帧的鼠标/触摸采样转换为 begin/move/end/cancel 事件
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateDragging 拖拽中（按住）
	DragStateDragging
)

// DragInfo 拖拽信息
type DragInfo struct {
	// State 当前拖拽状态
	State DragState
	// StartX, StartY 拖拽起始位置（屏幕坐标）
	StartX, StartY int
	// CurrentX, CurrentY 当前位置（屏幕坐标）
	CurrentX, CurrentY int
	// TouchID 当前跟踪的触摸ID（-1 表示鼠标）
	TouchID ebiten.TouchID
	// IsTouchInput 是否为触摸输入（区分触摸和鼠标）
	IsTouchInput bool
}

// PointerTracker 指针跟踪器
//
// 触摸优先于鼠标；一次拖拽只跟踪一个触点。
// 鼠标拖拽离开交互区域时发出 PointerCancel，之后必须先松开按键才能开始新的拖拽。
type PointerTracker struct {
	info        DragInfo
	prevPressed bool

	// 最近一次已知的指针位置（用于跟随光源）
	lastX, lastY int

	events []PointerEvent
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	pt := &PointerTracker{}
	pt.Reset()
	return pt
}

// Poll 采样 ebiten 输入并返回本帧事件（每帧调用一次）
func (pt *PointerTracker) Poll(width, height int) []PointerEvent {
	return pt.Step(SamplePointer(width, height))
}

// Step 根据一帧采样推进状态机，返回本帧事件
//
// 返回的切片在下一次调用前有效。
func (pt *PointerTracker) Step(s PointerSample) []PointerEvent {
	pt.events = pt.events[:0]

	if s.WheelX != 0 || s.WheelY != 0 {
		pt.emit(PointerEvent{
			Kind:   PointerWheel,
			X:      s.MouseX,
			Y:      s.MouseY,
			WheelX: -s.WheelX * WheelPixelScale,
			WheelY: -s.WheelY * WheelPixelScale,
		})
	}

	switch pt.info.State {
	case DragStateNone:
		pt.checkDragStart(s)
	case DragStateDragging:
		if pt.info.IsTouchInput {
			pt.updateTouch(s)
		} else {
			pt.updateMouse(s)
		}
	}

	if len(s.Touches) > 0 {
		pt.lastX, pt.lastY = s.Touches[0].X, s.Touches[0].Y
	} else {
		pt.lastX, pt.lastY = s.MouseX, s.MouseY
	}
	pt.prevPressed = s.MousePressed
	return pt.events
}

// checkDragStart 检测拖拽开始
func (pt *PointerTracker) checkDragStart(s PointerSample) {
	// 优先检测触摸输入
	if len(s.Touches) > 0 {
		tp := s.Touches[0]
		pt.info = DragInfo{
			State:        DragStateDragging,
			StartX:       tp.X,
			StartY:       tp.Y,
			CurrentX:     tp.X,
			CurrentY:     tp.Y,
			TouchID:      tp.ID,
			IsTouchInput: true,
		}
		pt.emit(PointerEvent{Kind: PointerBegin, Touch: true, X: tp.X, Y: tp.Y})
		return
	}

	// 鼠标只在本帧刚按下且位于区域内时开始
	if s.MousePressed && !pt.prevPressed && s.mouseInside() {
		pt.info = DragInfo{
			State:    DragStateDragging,
			StartX:   s.MouseX,
			StartY:   s.MouseY,
			CurrentX: s.MouseX,
			CurrentY: s.MouseY,
			TouchID:  -1,
		}
		pt.emit(PointerEvent{Kind: PointerBegin, X: s.MouseX, Y: s.MouseY})
	}
}

func (pt *PointerTracker) updateTouch(s PointerSample) {
	for _, tp := range s.Touches {
		if tp.ID != pt.info.TouchID {
			continue
		}
		if tp.X != pt.info.CurrentX || tp.Y != pt.info.CurrentY {
			pt.info.CurrentX, pt.info.CurrentY = tp.X, tp.Y
			pt.emit(PointerEvent{Kind: PointerMove, Touch: true, X: tp.X, Y: tp.Y})
		}
		return
	}
	// 触摸已释放，使用最后已知位置
	pt.emit(PointerEvent{Kind: PointerEnd, Touch: true, X: pt.info.CurrentX, Y: pt.info.CurrentY})
	pt.Reset()
}

func (pt *PointerTracker) updateMouse(s PointerSample) {
	if !s.MousePressed {
		pt.emit(PointerEvent{Kind: PointerEnd, X: s.MouseX, Y: s.MouseY})
		pt.Reset()
		return
	}
	if !s.mouseInside() {
		pt.emit(PointerEvent{Kind: PointerCancel, X: s.MouseX, Y: s.MouseY})
		pt.Reset()
		return
	}
	if s.MouseX != pt.info.CurrentX || s.MouseY != pt.info.CurrentY {
		pt.info.CurrentX, pt.info.CurrentY = s.MouseX, s.MouseY
		pt.emit(PointerEvent{Kind: PointerMove, X: s.MouseX, Y: s.MouseY})
	}
}

func (pt *PointerTracker) emit(e PointerEvent) {
	pt.events = append(pt.events, e)
}

// Reset 重置拖拽状态
func (pt *PointerTracker) Reset() {
	pt.info = DragInfo{
		State:   DragStateNone,
		TouchID: -1,
	}
}

// GetInfo 获取完整拖拽信息
func (pt *PointerTracker) GetInfo() DragInfo {
	return pt.info
}

// IsDragging 是否正在拖拽
func (pt *PointerTracker) IsDragging() bool {
	return pt.info.State == DragStateDragging
}

// IsTouchDrag 是否为触摸拖拽
func (pt *PointerTracker) IsTouchDrag() bool {
	return pt.info.IsTouchInput
}

// Pointer 返回最近一次已知的指针位置（触摸或鼠标）
func (pt *PointerTracker) Pointer() (x, y int) {
	return pt.lastX, pt.lastY
}
