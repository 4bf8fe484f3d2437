// Package transport computes the qualitative longshore transport index.
//
// The index follows a CERC-like shape, Q ~ H²·sin(2θ): the squared height
// stands in for wave energy and sin(2θ) flips sign with the incidence angle.
// It is illustrative only and carries no physical units.
package transport

import "math"

// Domain bounds re-applied by ComputeIndex regardless of the caller.
const (
	MinHeight = 0.0
	MaxHeight = 4.0
	MinAngle  = -60.0
	MaxAngle  = 60.0
)

// Arrow length bounds in logical units, and the index-to-length gain.
const (
	arrowGain      = 24.0
	MinArrowLength = 8.0
	MaxArrowLength = 120.0
)

// Clamp bounds x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, x))
}

// ComputeIndex returns the signed transport index for a wave height in
// meters and an incidence angle in degrees. Out-of-domain inputs are
// clamped, never rejected.
func ComputeIndex(height, angle float64) float64 {
	h := Clamp(height, MinHeight, MaxHeight)
	theta := Clamp(angle, MinAngle, MaxAngle) * math.Pi / 180
	return h * h * math.Sin(2*theta)
}

// ArrowLength maps an index to the drift arrow length in logical units.
// A zero index still yields a drawable arrow of MinArrowLength.
func ArrowLength(index float64) float64 {
	return Clamp(math.Abs(index)*arrowGain, MinArrowLength, MaxArrowLength)
}

// Direction returns +1 for a non-negative index and -1 otherwise
func Direction(index float64) float64 {
	if index >= 0 {
		return 1
	}
	return -1
}
