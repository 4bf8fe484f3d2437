package scene

import "math"

// Point is a position in device pixels, y growing downwards
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Segment is a straight line between two points
type Segment struct {
	From, To Point
}

// QuadCurve is a quadratic Bézier curve
type QuadCurve struct {
	Start, Control, End Point
}

// At evaluates the curve at t in [0,1]
func (c QuadCurve) At(t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*c.Start.X + 2*u*t*c.Control.X + t*t*c.End.X,
		Y: u*u*c.Start.Y + 2*u*t*c.Control.Y + t*t*c.End.Y,
	}
}

// Flatten approximates the curve with n line segments, returning n+1
// points from Start to End inclusive.
func (c QuadCurve) Flatten(n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = c.At(float64(i) / float64(n))
	}
	pts[0] = c.Start
	pts[n] = c.End
	return pts
}

// FlattenSteps picks a segment count so that each step spans a few pixels
func (c QuadCurve) FlattenSteps() int {
	span := c.Control.Sub(c.Start).Length() + c.End.Sub(c.Control).Length()
	n := int(math.Ceil(span / 4))
	if n < 8 {
		n = 8
	}
	if n > 512 {
		n = 512
	}
	return n
}
