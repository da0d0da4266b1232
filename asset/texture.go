package asset

import (
	"image"
	"sync/atomic"
)

// Texture is a sprite image filled in by a background load
// img is written once before ready is set, so readers that observe Ready see it
type Texture struct {
	name   string
	img    image.Image
	ready  atomic.Bool
	source atomic.Int32
}

// Source records where a texture's pixels came from
type Source int32

const (
	SourceNone Source = iota
	SourceFile
	SourceGenerated
)

func (s Source) String() string {
	switch s {
	case SourceFile:
		return "file"
	case SourceGenerated:
		return "generated"
	}
	return "none"
}

// NewTexture creates an unready texture
func NewTexture(name string) *Texture {
	return &Texture{name: name}
}

func (t *Texture) Name() string {
	return t.name
}

func (t *Texture) Ready() bool {
	return t.ready.Load()
}

// Image returns nil until the texture is ready
func (t *Texture) Image() image.Image {
	if !t.ready.Load() {
		return nil
	}
	return t.img
}

// Source returns the origin of the loaded pixels
func (t *Texture) Source() Source {
	return Source(t.source.Load())
}

// fill publishes img; later calls are ignored
func (t *Texture) fill(img image.Image, src Source) {
	if t.ready.Load() {
		return
	}
	t.img = img
	t.source.Store(int32(src))
	t.ready.Store(true)
}
