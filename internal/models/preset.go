package models

// Preset is a named, illustrative coastal scenario from the catalog.
type Preset struct {
	ID          int64   `json:"id"`          // Database Primary Key (0 if not saved)
	Name        string  `json:"name"`        // Unique display name
	Description string  `json:"description"` // One-line explanation shown in the picker
	WaveHeight  float64 `json:"wave_height"` // m
	WaveAngle   float64 `json:"wave_angle"`  // degrees
	TideRange   float64 `json:"tide_range"`  // m
}

// Parameters converts the preset into a parameter set
func (p Preset) Parameters() Parameters {
	return Parameters{
		Wave: WaveParameters{Height: p.WaveHeight, Angle: p.WaveAngle},
		Tide: TideParameter{Range: p.TideRange},
	}
}
