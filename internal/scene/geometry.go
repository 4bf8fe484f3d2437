// Package scene derives the illustrative coastal scene geometry from the
// current parameters and the device-pixel frame.
//
// Build is a pure function: the same inputs always produce the same
// Geometry, and nothing is retained between calls.
package scene

import (
	"math"

	"github.com/ngmaloney/coast-terminal/internal/models"
	"github.com/ngmaloney/coast-terminal/internal/transport"
)

// Layout constants. Values in the "logical" groups are multiplied by the
// device pixel ratio; the rest are fractions of the frame or raw device
// pixels.
const (
	seaLineFraction    = 0.45
	skyFraction        = 0.6
	beachRightFraction = 0.86
	beachControlFrac   = 0.35

	// raw device pixels
	tidePixelsPerMeter = 18
	beachControlDrop   = 55
	shoreStartDrop     = 3
	highlightDrop      = 2

	crestStart = -2
	crestCount = 6

	// logical
	seaGradientLead = 40
	crestSpacing    = 56
	crestHalf       = 240
	crestInsetL     = 20
	crestInsetR     = 40
	arrowGapRight   = 10
	arrowMaxInset   = 140
	arrowBelowTop   = 26
	arrowHeadLen    = 8
	arrowHeadHalf   = 6
	labelOffsetX    = 60
	labelOffsetY    = 12
)

// Beach is the sand polygon: a quadratic shore curve closed down to the
// bottom corners of the frame.
type Beach struct {
	BottomLeft  Point
	Shore       QuadCurve
	BottomRight Point
}

// Outline returns the closed polygon with the shore curve flattened
func (b Beach) Outline() []Point {
	curve := b.Shore.Flatten(b.Shore.FlattenSteps())
	pts := make([]Point, 0, len(curve)+2)
	pts = append(pts, b.BottomLeft)
	pts = append(pts, curve...)
	pts = append(pts, b.BottomRight)
	return pts
}

// Arrow is the longshore drift arrow: a horizontal shaft and a triangular
// head at the leading tip.
type Arrow struct {
	Anchor    Point
	Tail      Point
	Tip       Point
	Head      [3]Point
	Length    float64 // device pixels
	Direction float64 // +1 or -1
}

// Geometry bundles every derived quantity the renderer needs
type Geometry struct {
	Frame models.CanvasFrame
	Index float64

	SkyBottom      float64
	SeaY           float64
	SeaGradientTop float64

	BeachTop   float64
	BeachRight float64
	Beach      Beach
	Shoreline  QuadCurve

	Crests []Segment
	Arrow  Arrow
	Label  Point
}

// Build computes the scene geometry for a parameter set and frame.
// Wave height and angle are clamped only inside the index calculation;
// the crest slant and the tide offset use the values as given.
func Build(p models.Parameters, f models.CanvasFrame) Geometry {
	w := float64(f.DeviceWidth)
	h := float64(f.DeviceHeight)
	dpr := f.DevicePixelRatio
	if dpr <= 0 {
		dpr = 1
	}

	index := transport.ComputeIndex(p.Wave.Height, p.Wave.Angle)

	seaY := math.Round(h * seaLineFraction)
	beachTop := seaY - p.Tide.Range*tidePixelsPerMeter
	beachRight := math.Round(w * beachRightFraction)
	control := Pt(beachRight*beachControlFrac, beachTop+beachControlDrop)

	g := Geometry{
		Frame:          f,
		Index:          index,
		SkyBottom:      h * skyFraction,
		SeaY:           seaY,
		SeaGradientTop: seaY - seaGradientLead*dpr,
		BeachTop:       beachTop,
		BeachRight:     beachRight,
		Beach: Beach{
			BottomLeft: Pt(0, h),
			Shore: QuadCurve{
				Start:   Pt(0, seaY+shoreStartDrop),
				Control: control,
				End:     Pt(beachRight, beachTop),
			},
			BottomRight: Pt(w, h),
		},
		Shoreline: QuadCurve{
			Start:   Pt(0, seaY+highlightDrop),
			Control: control,
			End:     Pt(beachRight, beachTop+1),
		},
	}

	g.Crests = buildCrests(p.Wave.Angle, seaY, w, dpr)
	g.Arrow = buildArrow(index, beachRight, beachTop, w, dpr)
	g.Label = Pt(g.Arrow.Anchor.X-labelOffsetX*dpr, g.Arrow.Anchor.Y-labelOffsetY*dpr)

	return g
}

// buildCrests lays out parallel crest lines offset along the propagation
// direction (kx, ky) so their slant encodes the incidence angle.
func buildCrests(angle, seaY, w, dpr float64) []Segment {
	theta := angle * math.Pi / 180
	kx := math.Cos(theta)
	ky := math.Sin(theta)
	spacing := crestSpacing * dpr
	half := crestHalf * dpr

	crests := make([]Segment, 0, crestCount-crestStart)
	for i := crestStart; i < crestCount; i++ {
		offset := float64(i) * spacing
		crests = append(crests, Segment{
			From: Pt(crestInsetL*dpr+offset*kx-ky*half, seaY+offset*ky+kx*half),
			To:   Pt(w-crestInsetR*dpr+offset*kx-ky*half, seaY+offset*ky-kx*half),
		})
	}
	return crests
}

func buildArrow(index, beachRight, beachTop, w, dpr float64) Arrow {
	anchor := Pt(math.Min(beachRight+arrowGapRight*dpr, w-arrowMaxInset*dpr), beachTop+arrowBelowTop*dpr)
	dir := transport.Direction(index)
	length := transport.ArrowLength(index) * dpr

	tail := Pt(anchor.X-dir*length/2, anchor.Y)
	tip := Pt(anchor.X+dir*length/2, anchor.Y)
	back := tip.X - arrowHeadLen*dir*dpr

	return Arrow{
		Anchor: anchor,
		Tail:   tail,
		Tip:    tip,
		Head: [3]Point{
			tip,
			Pt(back, anchor.Y-arrowHeadHalf*dpr),
			Pt(back, anchor.Y+arrowHeadHalf*dpr),
		},
		Length:    length,
		Direction: dir,
	}
}
