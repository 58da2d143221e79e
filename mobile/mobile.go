//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 手动构建：
//
//	# Android
//	make prepare-mobile && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.carousel -o build/android/carousel.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	make prepare-mobile && ebitenmobile bind -target ios -tags mobile -o build/ios/Carousel.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/carousel/pkg/app"
	"github.com/decker502/carousel/pkg/embedded"
)

func init() {
	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	// 移动端没有命令行参数，图片从内嵌的 assets/ 读取
	cfg := app.Config{
		Verbose: true,
		Assets:  assetsFS,
	}

	galleryApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("画廊初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(galleryApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
