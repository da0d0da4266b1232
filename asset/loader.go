package asset

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/render"
)

// maxParallelLoads bounds concurrent file decodes
const maxParallelLoads = 4

// Loader fills textures from PNG files, generating placeholders for missing ones
type Loader struct {
	dir     string
	size    int
	palette render.Palette
}

// NewLoader reads <dir>/<name>.png; an empty dir generates every sprite
func NewLoader(dir string, size int, p render.Palette) *Loader {
	if size < 1 {
		size = 1
	}
	return &Loader{dir: dir, size: size, palette: p}
}

// Load fills every texture in the set and waits for completion
// A texture whose file fails to decode still receives a generated sprite; the first such error is returned
// A decode error does not cancel sibling loads; only ctx does
func (l *Loader) Load(ctx context.Context, set *Set) error {
	var g errgroup.Group
	g.SetLimit(maxParallelLoads)

	for _, t := range set.All() {
		g.Go(func() error {
			return l.loadOne(ctx, t)
		})
	}
	return g.Wait()
}

// LoadAsync runs Load in the background and calls done, if non-nil, when every texture is filled
// The renderer skips textures until their ready flag flips
func (l *Loader) LoadAsync(ctx context.Context, set *Set, done func(err error)) {
	core.Go(func() {
		err := l.Load(ctx, set)
		if err != nil {
			log.Printf("[asset] load: %v", err)
		}
		log.Printf("[asset] %d/%d textures ready", set.ReadyCount(), len(set.All()))
		if done != nil {
			done(err)
		}
	})
}

func (l *Loader) loadOne(ctx context.Context, t *Texture) error {
	if err := ctx.Err(); err != nil {
		t.fill(Generate(t.Name(), l.size, l.palette), SourceGenerated)
		return err
	}

	if l.dir != "" {
		img, err := decodePNG(filepath.Join(l.dir, t.Name()+".png"))
		if err == nil {
			t.fill(img, SourceFile)
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.fill(Generate(t.Name(), l.size, l.palette), SourceGenerated)
			return fmt.Errorf("texture %s: %w", t.Name(), err)
		}
	}

	t.fill(Generate(t.Name(), l.size, l.palette), SourceGenerated)
	return nil
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
