package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/ngmaloney/coast-terminal/internal/models"
	"github.com/ngmaloney/coast-terminal/internal/scene"
)

func defaultScene(width int, dpr float64) (models.CanvasFrame, scene.Geometry) {
	f := models.Viewport{LogicalWidth: float64(width), DevicePixelRatio: dpr}.Frame()
	return f, scene.Build(models.DefaultParameters(), f)
}

func within(got, want uint8, tol int) bool {
	d := int(got) - int(want)
	return d >= -tol && d <= tol
}

func TestRender_Skipped(t *testing.T) {
	f, g := defaultScene(800, 1)
	r := NewRenderer("")

	if r.Render(nil, f, g) {
		t.Error("Render(nil) = true, want false")
	}

	s := NewRasterSurface()
	s.Detach()
	if r.Render(s, f, g) {
		t.Error("Render() on detached surface = true, want false")
	}
	if s.Image() != nil {
		t.Error("detached surface was resized")
	}
	if s.Allocations() != 0 {
		t.Errorf("Allocations() = %d, want 0", s.Allocations())
	}

	s.Attach()
	if !r.Render(s, f, g) {
		t.Error("Render() after Attach = false, want true")
	}
}

func TestRender_ResizesOnlyWhenNeeded(t *testing.T) {
	s := NewRasterSurface()
	r := NewRenderer("")

	f, g := defaultScene(800, 1)
	r.Render(s, f, g)
	if w, h := s.Size(); w != 800 || h != 380 {
		t.Fatalf("Size() = %dx%d, want 800x380", w, h)
	}

	// Scribble on the surface; an identical frame must not reallocate but
	// must still repaint everything.
	s.Image().SetRGBA(100, 350, color.RGBA{R: 255, A: 255})
	r.Render(s, f, g)
	if s.Allocations() != 1 {
		t.Errorf("Allocations() = %d, want 1", s.Allocations())
	}
	if got := s.Image().RGBAAt(100, 350); got == (color.RGBA{R: 255, A: 255}) {
		t.Error("pixel was not repainted on an unchanged frame")
	}

	f, g = defaultScene(800, 2)
	r.Render(s, f, g)
	if s.Allocations() != 2 {
		t.Errorf("Allocations() = %d after dpr change, want 2", s.Allocations())
	}
	if w, h := s.Size(); w != 1600 || h != 760 {
		t.Errorf("Size() = %dx%d, want 1600x760", w, h)
	}
}

func TestRender_Idempotent(t *testing.T) {
	s := NewRasterSurface()
	r := NewRenderer("")
	f, g := defaultScene(640, 1.5)

	r.Render(s, f, g)
	first := bytes.Clone(s.Image().Pix)

	r.Render(s, f, scene.Build(models.DefaultParameters(), f))
	if !bytes.Equal(first, s.Image().Pix) {
		t.Error("second render with identical inputs produced a different raster")
	}
}

func TestRender_Layers(t *testing.T) {
	s := NewRasterSurface()
	r := NewRenderer("")
	f, g := defaultScene(800, 1)
	g.Crests = nil // keep sample points clear of the crest strokes

	r.Render(s, f, g)
	img := s.Image()

	tests := []struct {
		name string
		x, y int
		want color.RGBA
		tol  int
	}{
		{"sky near top", 400, 5, color.RGBA{R: 230, G: 240, B: 255, A: 255}, 2},
		{"sea right of beach", 790, 300, color.RGBA{R: 62, G: 141, B: 227, A: 255}, 3},
		{"beach", 100, 350, color.RGBA{R: 0xe9, G: 0xcf, B: 0x98, A: 255}, 1},
		{"arrow shaft", 655, 160, color.RGBA{R: 0x0f, G: 0x76, B: 0x6e, A: 255}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := img.RGBAAt(tt.x, tt.y)
			if !within(got.R, tt.want.R, tt.tol) || !within(got.G, tt.want.G, tt.tol) ||
				!within(got.B, tt.want.B, tt.tol) || got.A < 254 {
				t.Errorf("pixel (%d,%d) = %v, want %v ±%d", tt.x, tt.y, got, tt.want, tt.tol)
			}
		})
	}
}

func TestRender_FullyOpaque(t *testing.T) {
	s := NewRasterSurface()
	f, g := defaultScene(320, 1)
	NewRenderer("").Render(s, f, g)

	img := s.Image()
	for y := 0; y < f.DeviceHeight; y++ {
		for x := 0; x < f.DeviceWidth; x++ {
			if a := img.RGBAAt(x, y).A; a < 250 {
				t.Fatalf("pixel (%d,%d) alpha = %d, want opaque", x, y, a)
			}
		}
	}
}

func TestRender_StrokeScalesWithPixelRatio(t *testing.T) {
	teal := color.RGBA{R: 0x0f, G: 0x76, B: 0x6e, A: 255}
	thickness := func(dpr float64) int {
		s := NewRasterSurface()
		f, g := defaultScene(800, dpr)
		g.Crests = nil
		NewRenderer("").Render(s, f, g)
		x := int(g.Arrow.Anchor.X - g.Arrow.Direction*g.Arrow.Length/4)
		n := 0
		for y := 0; y < f.DeviceHeight; y++ {
			if c := s.Image().RGBAAt(x, y); within(c.R, teal.R, 2) && within(c.G, teal.G, 2) && within(c.B, teal.B, 2) {
				n++
			}
		}
		return n
	}

	one, two := thickness(1), thickness(2)
	if one < 3 || one > 4 {
		t.Errorf("arrow thickness at dpr 1 = %d px, want 3-4", one)
	}
	if two < 7 || two > 8 {
		t.Errorf("arrow thickness at dpr 2 = %d px, want 7-8", two)
	}
}

func TestRender_EmptyFrame(t *testing.T) {
	s := NewRasterSurface()
	f := models.Viewport{LogicalWidth: 0, DevicePixelRatio: 1}.Frame()
	if !NewRenderer("").Render(s, f, scene.Build(models.DefaultParameters(), f)) {
		t.Error("Render() on empty frame = false, want true")
	}
	if w, _ := s.Size(); w != 0 {
		t.Errorf("Size() width = %d, want 0", w)
	}
}

func TestNewRenderer_Label(t *testing.T) {
	if got := NewRenderer("").Label; got != DefaultLabel {
		t.Errorf("NewRenderer(\"\").Label = %q, want %q", got, DefaultLabel)
	}
	if got := NewRenderer("Dérive littorale").Label; got != "Dérive littorale" {
		t.Errorf("NewRenderer().Label = %q", got)
	}
}
