package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/carousel/pkg/config"
)

// ResourceManager is responsible for centralized management of gallery resources.
// It provides loading and caching mechanisms for slide images and fonts,
// ensuring that resources are loaded only once and reused across scene reloads.
//
// Images are read from an fs.FS rooted at the asset directory, so the same
// code serves disk assets (os.DirFS) and test fixtures (fstest.MapFS).
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// For the single-threaded game loop, no synchronization is needed.
//
// Usage:
//
//	rm := NewResourceManager(os.DirFS("."))
//	img, err := rm.LoadImage("assets/gallery/vitalia.jpg")
//	if err != nil {
//	    log.Printf("Failed to load image: %v", err)
//	}
type ResourceManager struct {
	assets fs.FS

	imageCache    map[string]*ebiten.Image    // Cache for loaded images: path -> Image
	fontFaceCache map[float64]*text.GoTextFace // Cache for default-font faces: size -> Face
	fontSource    *text.GoTextFaceSource
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - assets: The file system slide images are read from.
//
// Returns:
//   - A pointer to a newly initialized ResourceManager with empty caches.
func NewResourceManager(assets fs.FS) *ResourceManager {
	return &ResourceManager{
		assets:        assets,
		imageCache:    make(map[string]*ebiten.Image),
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// LoadImage loads an image from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// Supported formats: PNG and JPEG.
//
// Error handling:
//   - Returns an error if the file does not exist or cannot be opened.
//   - Returns an error if the image format is not supported or the file is corrupted.
//   - Does not panic - all errors are returned to the caller for handling.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	// Check if the image is already cached
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	if rm.assets == nil {
		return nil, fmt.Errorf("failed to open image file %s: no asset file system", path)
	}
	file, err := rm.assets.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadGalleryImages loads the image of every gallery entry.
//
// A failed load is not fatal: it is logged as a warning and the
// corresponding slot is nil, so the slide renders untextured.
//
// Returns:
//   - One image per entry, in entry order.
//   - The number of images that failed to load.
func (rm *ResourceManager) LoadGalleryImages(entries []config.ImageEntry) ([]*ebiten.Image, int) {
	images := make([]*ebiten.Image, len(entries))
	failed := 0
	for i, e := range entries {
		img, err := rm.LoadImage(e.Path)
		if err != nil {
			log.Printf("[ResourceManager] Warning: couldn't load image %s: %v", e.Path, err)
			failed++
			continue
		}
		images[i] = img
	}
	return images, failed
}

// LoadFontSource returns the default UI font source (Go Regular), parsing it once.
func (rm *ResourceManager) LoadFontSource() (*text.GoTextFaceSource, error) {
	if rm.fontSource != nil {
		return rm.fontSource, nil
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create default font source: %w", err)
	}
	rm.fontSource = source
	return source, nil
}

// LoadFont returns a cached face of the default font at the given size.
//
// Returns:
//   - A pointer to the text.GoTextFace ready for rendering.
//   - An error if the embedded font cannot be parsed.
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if cachedFace, exists := rm.fontFaceCache[size]; exists {
		return cachedFace, nil
	}

	source, err := rm.LoadFontSource()
	if err != nil {
		return nil, err
	}

	goTextFace := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = goTextFace
	return goTextFace, nil
}
