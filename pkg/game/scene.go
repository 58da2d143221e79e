package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the application (e.g. the gallery).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one frame.
	// deltaTime is the wall-clock time since the previous frame in seconds;
	// now is the monotonic time since the app started, used for input deadlines.
	Update(deltaTime float64, now time.Duration)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，用于接收绘制表面尺寸变化
//
// 实现此接口的场景会在 Layout 发现外部尺寸变化时被同步调用，
// 在下一次 Update 之前完成相机宽高比和视角的更新。
type Resizable interface {
	Resize(width, height int)
}

// Saveable 是一个可选接口，用于支持场景在退出时保存状态
//
// 实现此接口的场景会在以下时机被调用 SaveOnExit()：
//   - 窗口关闭
//   - 用户通过 OS 命令关闭程序
type Saveable interface {
	// SaveOnExit 在场景退出时保存状态
	// 返回 true 表示保存成功或无需保存
	// 返回 false 表示保存失败（但程序仍会正常退出）
	SaveOnExit() bool
}
