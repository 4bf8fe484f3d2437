package render

import "image"

// Surface is the drawing target owned by the renderer. Context returns
// nil while no 2-D context is available, e.g. before the surface is
// attached to a display.
type Surface interface {
	Size() (width, height int)
	Resize(width, height int)
	Context() Context
}

// RasterSurface is an in-memory RGBA backing store
type RasterSurface struct {
	img         *image.RGBA
	canvas      *Canvas
	attached    bool
	allocations int
}

// NewRasterSurface returns an attached surface with an empty backing store
func NewRasterSurface() *RasterSurface {
	s := &RasterSurface{attached: true}
	s.canvas = newCanvas(s)
	return s
}

// Size returns the backing-store size in device pixels
func (s *RasterSurface) Size() (int, int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates the backing store when the requested size differs
// from the current one; otherwise it does nothing.
func (s *RasterSurface) Resize(width, height int) {
	if w, h := s.Size(); w == width && h == height && s.img != nil {
		return
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.allocations++
}

// Context returns the surface's canvas, or nil while detached
func (s *RasterSurface) Context() Context {
	if !s.attached {
		return nil
	}
	return s.canvas
}

// Attach and Detach toggle context availability
func (s *RasterSurface) Attach() { s.attached = true }
func (s *RasterSurface) Detach() { s.attached = false }

// Attached reports whether a context is available
func (s *RasterSurface) Attached() bool { return s.attached }

// Image exposes the backing store. It is nil until the first resize.
func (s *RasterSurface) Image() *image.RGBA {
	return s.img
}

// Allocations counts backing-store reallocations
func (s *RasterSurface) Allocations() int {
	return s.allocations
}

// Close releases resources held by the surface's canvas
func (s *RasterSurface) Close() error {
	return s.canvas.Close()
}
