package render

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette of the scene.
var (
	skyTop    = mustHex("#e6f0ff")
	skyBottom = mustHex("#ffffff")
	seaTop    = mustHex("#6fb4ff")
	seaDeep   = mustHex("#277bd6")
	sand      = mustHex("#e9cf98")
	driftTeal = mustHex("#0f766e")
	labelInk  = mustHex("#0f172a")
	white     = mustHex("#ffffff")
)

// Colors exposed to the legend of the control panel.
var (
	SeaColor   = seaTop
	BeachColor = sand
	DriftColor = driftTeal
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Solid returns an opaque paint of c
func Solid(c colorful.Color) image.Image {
	return Translucent(c, 1)
}

// Translucent returns a paint of c with the given alpha in [0,1]
func Translucent(c colorful.Color, alpha float64) image.Image {
	r, g, b := c.Clamped().RGB255()
	a := uint8(math.Round(math.Max(0, math.Min(1, alpha)) * 255))
	return image.NewUniform(color.NRGBA{R: r, G: g, B: b, A: a})
}

// LinearGradient is a vertical two-stop gradient from From at Y0 to To at
// Y1. Rows outside the span take the nearest stop. It is unbounded, like
// image.Uniform, so it can be used directly as a rasterizer source.
type LinearGradient struct {
	Y0, Y1   float64
	From, To colorful.Color
}

// VerticalGradient builds a gradient along the y axis
func VerticalGradient(y0, y1 float64, from, to colorful.Color) *LinearGradient {
	return &LinearGradient{Y0: y0, Y1: y1, From: from, To: to}
}

func (g *LinearGradient) ColorModel() color.Model {
	return color.NRGBAModel
}

func (g *LinearGradient) Bounds() image.Rectangle {
	return image.Rectangle{Min: image.Point{X: -1e9, Y: -1e9}, Max: image.Point{X: 1e9, Y: 1e9}}
}

func (g *LinearGradient) At(_, y int) color.Color {
	r, gr, b := g.ColorAt(float64(y) + 0.5).RGB255()
	return color.NRGBA{R: r, G: gr, B: b, A: 0xff}
}

// ColorAt samples the gradient at a device-pixel y coordinate
func (g *LinearGradient) ColorAt(y float64) colorful.Color {
	span := g.Y1 - g.Y0
	if span == 0 {
		if y < g.Y0 {
			return g.From
		}
		return g.To
	}
	t := (y - g.Y0) / span
	t = math.Max(0, math.Min(1, t))
	return g.From.BlendRgb(g.To, t).Clamped()
}
