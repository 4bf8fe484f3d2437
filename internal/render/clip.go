package render

import "github.com/ngmaloney/coast-terminal/internal/scene"

// clipPolygon clips a polygon against the rectangle [0,w]x[0,h] using
// Sutherland-Hodgman. The result may be empty.
func clipPolygon(pts []scene.Point, w, h float64) []scene.Point {
	edges := []struct {
		inside    func(p scene.Point) bool
		intersect func(a, b scene.Point) scene.Point
	}{
		{
			inside:    func(p scene.Point) bool { return p.X >= 0 },
			intersect: func(a, b scene.Point) scene.Point { return lerpAtX(a, b, 0) },
		},
		{
			inside:    func(p scene.Point) bool { return p.X <= w },
			intersect: func(a, b scene.Point) scene.Point { return lerpAtX(a, b, w) },
		},
		{
			inside:    func(p scene.Point) bool { return p.Y >= 0 },
			intersect: func(a, b scene.Point) scene.Point { return lerpAtY(a, b, 0) },
		},
		{
			inside:    func(p scene.Point) bool { return p.Y <= h },
			intersect: func(a, b scene.Point) scene.Point { return lerpAtY(a, b, h) },
		},
	}

	out := pts
	for _, e := range edges {
		if len(out) == 0 {
			return nil
		}
		in := out
		out = make([]scene.Point, 0, len(in)+4)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur) && e.inside(prev):
				out = append(out, cur)
			case e.inside(cur):
				out = append(out, e.intersect(prev, cur), cur)
			case e.inside(prev):
				out = append(out, e.intersect(prev, cur))
			}
			prev = cur
		}
	}
	return out
}

func lerpAtX(a, b scene.Point, x float64) scene.Point {
	t := (x - a.X) / (b.X - a.X)
	return scene.Pt(x, a.Y+t*(b.Y-a.Y))
}

func lerpAtY(a, b scene.Point, y float64) scene.Point {
	t := (y - a.Y) / (b.Y - a.Y)
	return scene.Pt(a.X+t*(b.X-a.X), y)
}

// segmentQuad returns the butt-capped rectangle covering a stroke of the
// given width along a->b. Every quad winds the same way relative to its
// segment, so overlapping quads never cancel in the rasterizer.
func segmentQuad(a, b scene.Point, width float64) []scene.Point {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return nil
	}
	n := scene.Pt(-d.Y/l, d.X/l).Scale(width / 2)
	return []scene.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
}
