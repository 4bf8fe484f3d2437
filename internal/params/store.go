// Package params holds the user-adjustable parameters and notifies
// observers synchronously after every change.
package params

import (
	"github.com/ngmaloney/coast-terminal/internal/models"
)

// Snapshot is the state handed to observers
type Snapshot struct {
	Parameters models.Parameters
	Viewport   models.Viewport
}

// Frame derives the device-pixel frame for the snapshot's viewport
func (s Snapshot) Frame() models.CanvasFrame {
	return s.Viewport.Frame()
}

// Observer is called after a change, before the setter returns
type Observer func(Snapshot)

// Store owns the current parameter set. Setters do no validation: values
// arrive already bounded by the controls that produce them. Each setter
// call notifies every observer exactly once.
type Store struct {
	params    models.Parameters
	viewport  models.Viewport
	observers []Observer
}

// NewStore creates a store holding the given parameters
func NewStore(p models.Parameters) *Store {
	return &Store{
		params:   p,
		viewport: models.Viewport{DevicePixelRatio: 1},
	}
}

// Subscribe registers an observer. Observers run in registration order.
func (s *Store) Subscribe(o Observer) {
	if o == nil {
		return
	}
	s.observers = append(s.observers, o)
}

// Snapshot returns the current state
func (s *Store) Snapshot() Snapshot {
	return Snapshot{Parameters: s.params, Viewport: s.viewport}
}

// Parameters returns the current parameter set
func (s *Store) Parameters() models.Parameters {
	return s.params
}

// Viewport returns the last viewport reported by the host
func (s *Store) Viewport() models.Viewport {
	return s.viewport
}

// SetWaveHeight sets the significant wave height in meters
func (s *Store) SetWaveHeight(v float64) {
	s.params.Wave.Height = v
	s.notify()
}

// SetWaveAngle sets the incidence angle in degrees
func (s *Store) SetWaveAngle(v float64) {
	s.params.Wave.Angle = v
	s.notify()
}

// SetTideRange sets the tidal range in meters
func (s *Store) SetTideRange(v float64) {
	s.params.Tide.Range = v
	s.notify()
}

// SetAll replaces all three parameters as one change
func (s *Store) SetAll(p models.Parameters) {
	s.params = p
	s.notify()
}

// SetViewport records the host's logical width and pixel ratio. Observers
// are only notified when the derived frame size actually changes.
func (s *Store) SetViewport(v models.Viewport) bool {
	if v.Frame() == s.viewport.Frame() {
		s.viewport = v
		return false
	}
	s.viewport = v
	s.notify()
	return true
}

func (s *Store) notify() {
	snap := s.Snapshot()
	for _, o := range s.observers {
		o(snap)
	}
}
