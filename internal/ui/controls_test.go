package ui

import (
	"testing"

	"github.com/ngmaloney/coast-terminal/internal/models"
	"github.com/ngmaloney/coast-terminal/internal/params"
)

func TestControl_Snap(t *testing.T) {
	controls := defaultControls()

	tests := []struct {
		name    string
		control int
		in      float64
		want    float64
	}{
		{"height on grid", 0, 1.2, 1.2},
		{"height rounds to tenth", 0, 1.26, 1.3},
		{"height below min", 0, -0.5, 0},
		{"height above max", 0, 4.7, 4},
		{"angle rounds to degree", 1, 12.4, 12},
		{"angle below min", 1, -75, -60},
		{"angle above max", 1, 61, 60},
		{"tide above max", 2, 9, 8},
		{"tide accumulated tenths", 2, 0.1 + 0.2, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := controls[tt.control].snap(tt.in); got != tt.want {
				t.Errorf("snap(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestControl_ApplySkipsUnchangedValue(t *testing.T) {
	store := params.NewStore(models.DefaultParameters())
	calls := 0
	store.Subscribe(func(params.Snapshot) { calls++ })

	height := defaultControls()[0]

	if height.apply(store, 1.2) {
		t.Error("apply() with the current value should not write")
	}
	if height.apply(store, 1.21) {
		t.Error("apply() of a value that snaps to the current one should not write")
	}
	if calls != 0 {
		t.Errorf("observer calls = %d, want 0", calls)
	}

	if !height.apply(store, 2) {
		t.Error("apply() with a new value should write")
	}
	if calls != 1 {
		t.Errorf("observer calls = %d, want 1", calls)
	}
}

func TestControl_Readout(t *testing.T) {
	p := models.Parameters{
		Wave: models.WaveParameters{Height: 1.24, Angle: -12.6},
		Tide: models.TideParameter{Range: 7.5},
	}
	want := []string{"1.2 m", "-13°", "7.5 m"}

	for i, c := range defaultControls() {
		if got := c.readout(p); got != want[i] {
			t.Errorf("%s readout = %q, want %q", c.label, got, want[i])
		}
	}
}

func TestControl_Track(t *testing.T) {
	angle := defaultControls()[1]

	tests := []struct {
		name  string
		value float64
		knob  int
	}{
		{"min", -60, 0},
		{"centre", 0, 12},
		{"max", 60, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.Parameters{Wave: models.WaveParameters{Angle: tt.value}}
			track := []rune(angle.track(p, 25))

			if len(track) != 25 {
				t.Fatalf("track width = %d, want 25", len(track))
			}
			knob := -1
			for i, r := range track {
				if r == '●' {
					knob = i
				}
			}
			if knob != tt.knob {
				t.Errorf("knob at %d in %q, want %d", knob, string(track), tt.knob)
			}
		})
	}
}

func TestBoundParameters(t *testing.T) {
	tests := []struct {
		name string
		in   models.Parameters
		want models.Parameters
	}{
		{
			name: "defaults unchanged",
			in:   models.DefaultParameters(),
			want: models.DefaultParameters(),
		},
		{
			name: "out of range clamped",
			in: models.Parameters{
				Wave: models.WaveParameters{Height: 9, Angle: -80},
				Tide: models.TideParameter{Range: 12},
			},
			want: models.Parameters{
				Wave: models.WaveParameters{Height: 4, Angle: -60},
				Tide: models.TideParameter{Range: 8},
			},
		},
		{
			name: "off-grid values snapped",
			in: models.Parameters{
				Wave: models.WaveParameters{Height: 1.234, Angle: 17.6},
				Tide: models.TideParameter{Range: -1},
			},
			want: models.Parameters{
				Wave: models.WaveParameters{Height: 1.2, Angle: 18},
				Tide: models.TideParameter{Range: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoundParameters(tt.in); got != tt.want {
				t.Errorf("BoundParameters() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
