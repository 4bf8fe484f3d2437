package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/ngmaloney/coast-terminal/internal/models"
	"github.com/ngmaloney/coast-terminal/internal/params"
	"github.com/ngmaloney/coast-terminal/internal/transport"
)

// control is one range input of the panel. It owns the bounds and step of
// its value; the store it writes to does no validation of its own.
type control struct {
	label  string
	format string
	min    float64
	max    float64
	step   float64

	get func(models.Parameters) float64
	set func(*params.Store, float64)
}

// Tide range has no domain outside the control, so its bounds live here.
const (
	minTideRange  = 0
	maxTideRange  = 8
	heightStep    = 0.1
	angleStep     = 1
	tideRangeStep = 0.1
)

func defaultControls() []control {
	return []control{
		{
			label:  "Wave height",
			format: "%.1f m",
			min:    transport.MinHeight,
			max:    transport.MaxHeight,
			step:   heightStep,
			get:    func(p models.Parameters) float64 { return p.Wave.Height },
			set:    (*params.Store).SetWaveHeight,
		},
		{
			label:  "Wave angle",
			format: "%.0f°",
			min:    transport.MinAngle,
			max:    transport.MaxAngle,
			step:   angleStep,
			get:    func(p models.Parameters) float64 { return p.Wave.Angle },
			set:    (*params.Store).SetWaveAngle,
		},
		{
			label:  "Tide range",
			format: "%.1f m",
			min:    minTideRange,
			max:    maxTideRange,
			step:   tideRangeStep,
			get:    func(p models.Parameters) float64 { return p.Tide.Range },
			set:    (*params.Store).SetTideRange,
		},
	}
}

// BoundParameters passes p through the panel's controls, so values from
// outside the panel obey the same step and bounds as key presses.
func BoundParameters(p models.Parameters) models.Parameters {
	c := defaultControls()
	return models.Parameters{
		Wave: models.WaveParameters{
			Height: c[0].snap(p.Wave.Height),
			Angle:  c[1].snap(p.Wave.Angle),
		},
		Tide: models.TideParameter{Range: c[2].snap(p.Tide.Range)},
	}
}

// snap rounds v to the control's step grid and bounds it to [min, max]
func (c control) snap(v float64) float64 {
	steps := math.Round((v - c.min) / c.step)
	v = c.min + steps*c.step
	// Drop the float noise left by repeated tenths.
	v = math.Round(v*1e6) / 1e6
	return transport.Clamp(v, c.min, c.max)
}

// apply moves the control to v and writes it to the store. It reports
// whether the store was touched; an unchanged value is not written.
func (c control) apply(s *params.Store, v float64) bool {
	next := c.snap(v)
	if next == c.get(s.Parameters()) {
		return false
	}
	c.set(s, next)
	return true
}

// nudge moves the control by n steps
func (c control) nudge(s *params.Store, n int) bool {
	return c.apply(s, c.get(s.Parameters())+float64(n)*c.step)
}

// readout formats the control's current value
func (c control) readout(p models.Parameters) string {
	return fmt.Sprintf(c.format, c.get(p))
}

// track draws a horizontal slider of width cells for the current value
func (c control) track(p models.Parameters, width int) string {
	if width < 2 {
		width = 2
	}
	frac := (c.get(p) - c.min) / (c.max - c.min)
	frac = transport.Clamp(frac, 0, 1)
	filled := int(math.Round(frac * float64(width-1)))

	return trackFilledStyle.Render(strings.Repeat("━", filled)) +
		trackFilledStyle.Render("●") +
		trackEmptyStyle.Render(strings.Repeat("─", width-1-filled))
}
