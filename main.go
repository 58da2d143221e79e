package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"

	"github.com/decker502/carousel/pkg/app"
	"github.com/decker502/carousel/pkg/config"
	"github.com/decker502/carousel/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "print log output")
	configPath = flag.String("config", config.DefaultGalleryConfigPath, "gallery config (data/... reads the embedded copy)")
	fullscreen = flag.Bool("fullscreen", false, "start in fullscreen mode")
	assetsDir  = flag.String("assets", ".", "directory the gallery image paths are relative to")
)

func main() {
	flag.Parse()

	// dataFS is declared in embed.go.
	embedded.Init(dataFS)

	gallery, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Fullscreen: *fullscreen,
		Assets:     os.DirFS(*assetsDir),
	})
	if err != nil {
		log.Fatalf("failed to start gallery: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// RunGame returns once the window is closed.
	if err := ebiten.RunGame(gallery); err != nil {
		log.Fatal(err)
	}
	gallery.Shutdown()
}
