package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonas-p/go-shp"

	"github.com/ngmaloney/coast-terminal/internal/scene"
)

// Shapefile base names written by WriteShapefiles
const (
	BeachLayer     = "beach"
	ShorelineLayer = "shoreline"
	CrestsLayer    = "crests"
	DriftLayer     = "drift"
)

// WriteShapefiles exports the scene geometry as one ESRI shapefile per
// layer in dir and returns the .shp paths written. Every feature carries
// its kind and the transport index of the scene. Coordinates are device
// pixels with the origin at the bottom-left of the frame and y pointing
// up, so GIS tools show the scene the right way round.
func WriteShapefiles(dir string, g scene.Geometry) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}

	h := float64(g.Frame.DeviceHeight)
	flip := func(pts []scene.Point) []shp.Point {
		out := make([]shp.Point, len(pts))
		for i, p := range pts {
			out[i] = shp.Point{X: p.X, Y: h - p.Y}
		}
		return out
	}

	var written []string

	// Beach: one polygon ring, closed and clockwise as the format expects.
	ring := flip(g.Beach.Outline())
	ring = append(ring, ring[0])
	if signedArea(ring) > 0 {
		reverse(ring)
	}
	path, err := writeLayer(dir, BeachLayer, shp.POLYGON, []layerFeature{{
		shape: polygon([][]shp.Point{ring}),
		kind:  "beach",
	}}, g.Index)
	if err != nil {
		return written, err
	}
	written = append(written, path)

	// Shoreline highlight
	path, err = writeLayer(dir, ShorelineLayer, shp.POLYLINE, []layerFeature{{
		shape: shp.NewPolyLine([][]shp.Point{flip(g.Shoreline.Flatten(g.Shoreline.FlattenSteps()))}),
		kind:  "shoreline",
	}}, g.Index)
	if err != nil {
		return written, err
	}
	written = append(written, path)

	// Crests, one feature each
	crests := make([]layerFeature, 0, len(g.Crests))
	for _, c := range g.Crests {
		crests = append(crests, layerFeature{
			shape: shp.NewPolyLine([][]shp.Point{flip([]scene.Point{c.From, c.To})}),
			kind:  "crest",
		})
	}
	path, err = writeLayer(dir, CrestsLayer, shp.POLYLINE, crests, g.Index)
	if err != nil {
		return written, err
	}
	written = append(written, path)

	// Drift arrow: shaft plus the head outline as a second part
	head := append(g.Arrow.Head[:], g.Arrow.Head[0])
	path, err = writeLayer(dir, DriftLayer, shp.POLYLINE, []layerFeature{{
		shape: shp.NewPolyLine([][]shp.Point{
			flip([]scene.Point{g.Arrow.Tail, g.Arrow.Tip}),
			flip(head),
		}),
		kind: "drift",
	}}, g.Index)
	if err != nil {
		return written, err
	}
	written = append(written, path)

	return written, nil
}

type layerFeature struct {
	shape shp.Shape
	kind  string
}

// layerFields is the attribute table shared by every layer
var layerFields = []shp.Field{
	shp.StringField("kind", 16),
	shp.FloatField("index", 19, 6),
}

func writeLayer(dir, name string, kind shp.ShapeType, features []layerFeature, index float64) (string, error) {
	path := filepath.Join(dir, name+".shp")
	w, err := shp.Create(path, kind)
	if err != nil {
		return "", fmt.Errorf("creating %s layer: %w", name, err)
	}

	if err := writeFeatures(w, name, features, index); err != nil {
		w.Close()
		return "", err
	}
	w.Close()

	// go-shp names the attribute table <name>dbf; readers expect <name>.dbf.
	if err := os.Rename(filepath.Join(dir, name+"dbf"), filepath.Join(dir, name+".dbf")); err != nil {
		return "", fmt.Errorf("naming %s attribute table: %w", name, err)
	}

	return path, nil
}

func writeFeatures(w *shp.Writer, name string, features []layerFeature, index float64) error {
	if err := w.SetFields(layerFields); err != nil {
		return fmt.Errorf("setting %s fields: %w", name, err)
	}

	for _, f := range features {
		row := int(w.Write(f.shape))
		if err := w.WriteAttribute(row, 0, f.kind); err != nil {
			return fmt.Errorf("writing %s kind: %w", name, err)
		}
		if err := w.WriteAttribute(row, 1, index); err != nil {
			return fmt.Errorf("writing %s index: %w", name, err)
		}
	}
	return nil
}

func polygon(parts [][]shp.Point) *shp.Polygon {
	p := shp.Polygon(*shp.NewPolyLine(parts))
	return &p
}

// signedArea is positive for counter-clockwise rings in y-up space
func signedArea(ring []shp.Point) float64 {
	var a float64
	for i := 0; i+1 < len(ring); i++ {
		a += ring[i].X*ring[i+1].Y - ring[i+1].X*ring[i].Y
	}
	return a / 2
}

func reverse(pts []shp.Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
