package scenes

import (
	"github.com/decker502/carousel/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// 场景名称，用于 game.SceneManager.LoadScene
const (
	SceneGallery = "gallery"
)
