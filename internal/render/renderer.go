// Package render paints the coastal scene into a raster surface.
//
// Every Render call repaints the whole frame from scratch; no drawing
// state survives between frames except the backing store itself.
package render

import (
	"github.com/ngmaloney/coast-terminal/internal/models"
	"github.com/ngmaloney/coast-terminal/internal/scene"
)

// DefaultLabel is drawn above the drift arrow
const DefaultLabel = "Longshore drift"

// Stroke widths and font size in logical units, scaled by the pixel ratio.
const (
	highlightWidth = 2
	crestWidth     = 2
	arrowWidth     = 4
	labelSize      = 14

	highlightAlpha = 0.9
	crestAlpha     = 0.7
)

// Renderer paints scene geometry onto a Surface
type Renderer struct {
	Label string
}

// NewRenderer creates a renderer drawing the given arrow label.
// An empty label falls back to DefaultLabel.
func NewRenderer(label string) *Renderer {
	if label == "" {
		label = DefaultLabel
	}
	return &Renderer{Label: label}
}

// Render resizes the surface to the frame if needed, clears it and paints
// the full scene. It reports whether anything was drawn: when the surface
// or its context is unavailable the pass is skipped without touching it.
func (r *Renderer) Render(s Surface, f models.CanvasFrame, g scene.Geometry) bool {
	if s == nil {
		return false
	}
	ctx := s.Context()
	if ctx == nil {
		return false
	}

	if w, h := s.Size(); w != f.DeviceWidth || h != f.DeviceHeight {
		s.Resize(f.DeviceWidth, f.DeviceHeight)
	}
	ctx.Clear()
	if f.Empty() {
		return true
	}

	w := float64(f.DeviceWidth)
	h := float64(f.DeviceHeight)
	dpr := f.DevicePixelRatio
	if dpr <= 0 {
		dpr = 1
	}

	// Sky and sea
	ctx.FillRect(0, 0, w, g.SkyBottom, VerticalGradient(0, g.SkyBottom, skyTop, skyBottom))
	ctx.FillRect(0, g.SeaY, w, h-g.SeaY, VerticalGradient(g.SeaGradientTop, h, seaTop, seaDeep))

	// Beach and its wet edge
	ctx.FillPolygon(g.Beach.Outline(), Solid(sand))
	ctx.StrokePolyline(g.Shoreline.Flatten(g.Shoreline.FlattenSteps()), highlightWidth*dpr, Translucent(white, highlightAlpha))

	crestPaint := Translucent(white, crestAlpha)
	for _, c := range g.Crests {
		ctx.StrokePolyline([]scene.Point{c.From, c.To}, crestWidth*dpr, crestPaint)
	}

	// Drift arrow
	teal := Solid(driftTeal)
	ctx.StrokePolyline([]scene.Point{g.Arrow.Tail, g.Arrow.Tip}, arrowWidth*dpr, teal)
	ctx.FillPolygon(g.Arrow.Head[:], teal)

	ctx.FillText(r.Label, g.Label, labelSize*dpr, labelInk)
	return true
}
