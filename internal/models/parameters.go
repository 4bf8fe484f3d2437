package models

import "math"

// Default parameter values shown when the panel first opens.
const (
	DefaultWaveHeight = 1.2 // m
	DefaultWaveAngle  = 20  // degrees relative to shore-normal
	DefaultTideRange  = 2.0 // m

	// LogicalHeight is the fixed logical height of the drawing surface.
	LogicalHeight = 380
)

// WaveParameters describes the incoming wave field
type WaveParameters struct {
	Height float64 // significant wave height, meters
	Angle  float64 // incidence angle, degrees relative to shore-normal (signed)
}

// TideParameter describes the tidal forcing
type TideParameter struct {
	Range float64 // meters between low and high water
}

// Parameters is the full set of user-adjustable inputs
type Parameters struct {
	Wave WaveParameters
	Tide TideParameter
}

// DefaultParameters returns the values the panel starts with
func DefaultParameters() Parameters {
	return Parameters{
		Wave: WaveParameters{Height: DefaultWaveHeight, Angle: DefaultWaveAngle},
		Tide: TideParameter{Range: DefaultTideRange},
	}
}

// Viewport is what the host display reports about the drawing surface:
// its logical (CSS-like) width and the display pixel density.
type Viewport struct {
	LogicalWidth     float64
	DevicePixelRatio float64
}

// CanvasFrame holds the device-pixel dimensions of the backing store
type CanvasFrame struct {
	DeviceWidth      int
	DeviceHeight     int
	DevicePixelRatio float64
}

// Frame derives the backing-store size for the viewport. The height is
// always LogicalHeight logical units. A missing or invalid pixel ratio
// falls back to 1.
func (v Viewport) Frame() CanvasFrame {
	dpr := v.DevicePixelRatio
	if dpr <= 0 || math.IsNaN(dpr) || math.IsInf(dpr, 0) {
		dpr = 1
	}
	width := v.LogicalWidth
	if width < 0 || math.IsNaN(width) {
		width = 0
	}
	return CanvasFrame{
		DeviceWidth:      int(math.Floor(width * dpr)),
		DeviceHeight:     int(math.Floor(LogicalHeight * dpr)),
		DevicePixelRatio: dpr,
	}
}

// Empty reports whether the frame has no drawable area
func (f CanvasFrame) Empty() bool {
	return f.DeviceWidth <= 0 || f.DeviceHeight <= 0
}
