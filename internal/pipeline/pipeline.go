// Package pipeline wires the parameter store to the renderer: every
// store change recomputes the transport index and scene geometry and
// repaints the surface before the setter returns.
package pipeline

import (
	"github.com/ngmaloney/coast-terminal/internal/params"
	"github.com/ngmaloney/coast-terminal/internal/render"
	"github.com/ngmaloney/coast-terminal/internal/scene"
)

// Pipeline is the store observer that keeps a surface up to date
type Pipeline struct {
	surface  render.Surface
	renderer *render.Renderer

	geometry scene.Geometry
	redraws  int
	skipped  int
}

// New creates a pipeline drawing into surface with renderer
func New(surface render.Surface, renderer *render.Renderer) *Pipeline {
	return &Pipeline{surface: surface, renderer: renderer}
}

// Attach subscribes the pipeline to store and paints the current state
// once so the surface is never blank.
func Attach(store *params.Store, surface render.Surface, renderer *render.Renderer) *Pipeline {
	p := New(surface, renderer)
	store.Subscribe(p.Redraw)
	p.Redraw(store.Snapshot())
	return p
}

// Redraw recomputes the geometry for snap and repaints the surface
func (p *Pipeline) Redraw(snap params.Snapshot) {
	frame := snap.Frame()
	p.geometry = scene.Build(snap.Parameters, frame)
	if p.renderer.Render(p.surface, frame, p.geometry) {
		p.redraws++
	} else {
		p.skipped++
	}
}

// Index returns the transport index of the last recompute
func (p *Pipeline) Index() float64 {
	return p.geometry.Index
}

// Geometry returns the geometry of the last recompute
func (p *Pipeline) Geometry() scene.Geometry {
	return p.geometry
}

// Redraws counts completed repaints
func (p *Pipeline) Redraws() int {
	return p.redraws
}

// Skipped counts passes skipped because no context was available
func (p *Pipeline) Skipped() int {
	return p.skipped
}
