package config

// 窗口配置常量
// 画廊的逻辑分辨率跟随窗口尺寸（Layout 直接返回外部尺寸），
// 这里只定义启动时的窗口大小和标题。
const (
	// GameWindowWidth 启动时的窗口宽度（像素）
	GameWindowWidth = 1280

	// GameWindowHeight 启动时的窗口高度（像素）
	GameWindowHeight = 720

	// WindowTitle 窗口标题
	WindowTitle = "Gallery"

	// StorageAppName gdata 存储目录名
	StorageAppName = "carousel_gallery"
)
