package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/ngmaloney/coast-terminal/internal/scene"
)

// Context is the 2-D drawing API the renderer paints through.
// Paints are image.Image sources (Solid, Translucent, LinearGradient).
type Context interface {
	Clear()
	FillRect(x, y, w, h float64, paint image.Image)
	FillPolygon(pts []scene.Point, paint image.Image)
	StrokePolyline(pts []scene.Point, width float64, paint image.Image)
	FillText(text string, at scene.Point, size float64, ink color.Color)
}

// Canvas draws anti-aliased shapes into the backing store of a
// RasterSurface. It always targets the surface's current image, so a
// resize between calls is picked up transparently.
type Canvas struct {
	surface *RasterSurface
	raster  *vector.Rasterizer
	faces   map[float64]font.Face
}

func newCanvas(s *RasterSurface) *Canvas {
	return &Canvas{
		surface: s,
		raster:  vector.NewRasterizer(0, 0),
		faces:   make(map[float64]font.Face),
	}
}

func (c *Canvas) target() (*image.RGBA, float64, float64) {
	img := c.surface.img
	if img == nil {
		return nil, 0, 0
	}
	b := img.Bounds()
	return img, float64(b.Dx()), float64(b.Dy())
}

// Clear resets every pixel to transparent black
func (c *Canvas) Clear() {
	img, _, _ := c.target()
	if img == nil {
		return
	}
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// FillRect fills the axis-aligned rectangle at (x, y) of size w x h
func (c *Canvas) FillRect(x, y, w, h float64, paint image.Image) {
	c.FillPolygon([]scene.Point{
		scene.Pt(x, y),
		scene.Pt(x+w, y),
		scene.Pt(x+w, y+h),
		scene.Pt(x, y+h),
	}, paint)
}

// FillPolygon fills a closed polygon
func (c *Canvas) FillPolygon(pts []scene.Point, paint image.Image) {
	c.fill([][]scene.Point{pts}, paint)
}

// StrokePolyline strokes an open polyline with butt caps
func (c *Canvas) StrokePolyline(pts []scene.Point, width float64, paint image.Image) {
	if width <= 0 || len(pts) < 2 {
		return
	}
	quads := make([][]scene.Point, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		if q := segmentQuad(pts[i-1], pts[i], width); q != nil {
			quads = append(quads, q)
		}
	}
	c.fill(quads, paint)
}

// fill rasterizes all polygons as one path so overlapping parts of the
// same stroke are composited once.
func (c *Canvas) fill(polys [][]scene.Point, paint image.Image) {
	img, w, h := c.target()
	if img == nil || w == 0 || h == 0 {
		return
	}

	c.raster.Reset(int(w), int(h))
	c.raster.DrawOp = draw.Over
	drawn := false
	for _, poly := range polys {
		clipped := clipPolygon(poly, w, h)
		if len(clipped) < 3 {
			continue
		}
		c.raster.MoveTo(float32(clipped[0].X), float32(clipped[0].Y))
		for _, p := range clipped[1:] {
			c.raster.LineTo(float32(p.X), float32(p.Y))
		}
		c.raster.ClosePath()
		drawn = true
	}
	if drawn {
		c.raster.Draw(img, img.Bounds(), paint, image.Point{})
	}
}

// FillText draws text with its baseline starting at the given point
func (c *Canvas) FillText(text string, at scene.Point, size float64, ink color.Color) {
	img, _, _ := c.target()
	if img == nil || text == "" {
		return
	}
	face, ok := c.faces[size]
	if !ok {
		face = faceForSize(size)
		c.faces[size] = face
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(at.X * 64),
			Y: fixed.Int26_6(at.Y * 64),
		},
	}
	d.DrawString(text)
}

// Close releases the cached font faces. The canvas stays usable and
// loads faces again on the next FillText.
func (c *Canvas) Close() error {
	var firstErr error
	for size, face := range c.faces {
		if err := face.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing %.1fpx face: %w", size, err)
		}
		delete(c.faces, size)
	}
	return firstErr
}
