package backend

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/vi-snake/render"
)

// imageCache uploads each texture to the GPU on first draw
// Only touched from ebiten's Draw, so no locking
type imageCache struct {
	images map[string]*ebiten.Image
}

func newImageCache() *imageCache {
	return &imageCache{images: make(map[string]*ebiten.Image)}
}

func (c *imageCache) get(tex render.Texture) *ebiten.Image {
	if img, ok := c.images[tex.Name()]; ok {
		return img
	}
	src := tex.Image()
	if src == nil {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	c.images[tex.Name()] = img
	return img
}

// Window is a backend drawing into an ebiten image supplied each frame
type Window interface {
	render.Backend
	SetTarget(dst *ebiten.Image)
}
