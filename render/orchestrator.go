package render

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/status"
)

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline and implements engine.FrameRenderer
type Orchestrator struct {
	backend   Backend
	presenter Presenter // nil when the backend does not present
	clocked   Clocked   // nil when the backend has no timed effects

	layout  Layout
	sprites *SpriteSet
	start   time.Time

	layers   []layerEntry
	regCount int

	statSprites *atomic.Int64
	statSkipped *atomic.Int64
}

// NewOrchestrator wraps the chosen backend; optional capabilities are detected once here
func NewOrchestrator(b Backend, layout Layout, sprites *SpriteSet, start time.Time, reg *status.Registry) *Orchestrator {
	if reg == nil {
		reg = status.NewRegistry()
	}
	o := &Orchestrator{
		backend:     b,
		layout:      layout,
		sprites:     sprites,
		start:       start,
		layers:      make([]layerEntry, 0, 4),
		statSprites: reg.Ints.Get(status.KeySprites),
		statSkipped: reg.Ints.Get(status.KeySkipped),
	}
	o.presenter, _ = b.(Presenter)
	o.clocked, _ = b.(Clocked)
	reg.Strings.Get(status.KeyBackend).Store(b.Name())
	log.Printf("[render] backend %s (present=%v clocked=%v)", b.Name(), o.presenter != nil, o.clocked != nil)
	return o
}

// RegisterDefaults adds the food and snake layers
func (o *Orchestrator) RegisterDefaults(headFrameInterval time.Duration) {
	o.Register(FoodLayer{}, PriorityFood)
	o.Register(NewSnakeLayer(headFrameInterval), PrioritySnake)
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(l Layer, priority RenderPriority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// Backend returns the backend chosen at startup
func (o *Orchestrator) Backend() Backend {
	return o.backend
}

// SetLayout updates cell size and origin after a restart or resize
func (o *Orchestrator) SetLayout(l Layout) {
	o.layout = l
}

// RenderFrame executes the pipeline: clear, background, layers, present
func (o *Orchestrator) RenderFrame(s *engine.Session, now time.Time) {
	elapsed := now.Sub(o.start).Seconds()
	if o.clocked != nil {
		o.clocked.SetTime(elapsed)
	}

	o.backend.Clear()
	o.backend.DrawBackground()

	ctx := Context{Session: s, Now: now, Elapsed: elapsed, Sprites: o.sprites}
	for _, entry := range o.layers {
		entry.layer.Render(ctx, o)
	}

	if o.presenter != nil {
		o.presenter.Present()
	}
}

// Sprite implements SpriteSink; textures still loading are skipped for this frame only
func (o *Orchestrator) Sprite(tex Texture, cell core.Point, rotation float64) {
	if tex == nil || !tex.Ready() {
		o.statSkipped.Add(1)
		return
	}
	x, y := o.layout.CellCenter(cell)
	o.backend.DrawSprite(tex, x, y, o.layout.CellSize, o.layout.CellSize, rotation)
	o.statSprites.Add(1)
}
