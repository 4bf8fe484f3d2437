package presets

import "github.com/ngmaloney/coast-terminal/internal/models"

// DefaultCatalog lists the built-in teaching scenarios, in display order.
// All values sit inside the control domains.
func DefaultCatalog() []models.Preset {
	return []models.Preset{
		{Name: "Teaching case", Description: "Moderate oblique swell on a mesotidal beach", WaveHeight: 1.2, WaveAngle: 20, TideRange: 2.0},
		{Name: "Calm, normal incidence", Description: "Crests parallel to the shore, no net drift", WaveHeight: 0.6, WaveAngle: 0, TideRange: 1.5},
		{Name: "Oblique winter swell", Description: "Large waves at a steep angle drive strong drift", WaveHeight: 3.0, WaveAngle: 35, TideRange: 2.0},
		{Name: "Storm, maximum drift", Description: "4 m waves at 45°: the index saturates the arrow", WaveHeight: 4.0, WaveAngle: 45, TideRange: 4.0},
		{Name: "Reversed drift", Description: "Waves from the other side push sediment the other way", WaveHeight: 1.8, WaveAngle: -25, TideRange: 2.5},
		{Name: "Macrotidal flat", Description: "Wide intertidal zone under a large tidal range", WaveHeight: 1.0, WaveAngle: 15, TideRange: 7.5},
		{Name: "Microtidal sea", Description: "Almost no tide, gentle waves from the left", WaveHeight: 1.2, WaveAngle: -10, TideRange: 0.3},
	}
}
