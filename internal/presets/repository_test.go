package presets

import (
	"path/filepath"
	"testing"

	"github.com/ngmaloney/coast-terminal/internal/models"
	"github.com/ngmaloney/coast-terminal/internal/transport"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(filepath.Join(t.TempDir(), "presets.db"))
}

func TestRepository_Seed(t *testing.T) {
	repo := newTestRepository(t)

	n, err := repo.Seed()
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if want := len(DefaultCatalog()); n != want {
		t.Errorf("Seed() = %d, want %d", n, want)
	}

	// A second seed is a no-op.
	n, err = repo.Seed()
	if err != nil {
		t.Fatalf("second Seed() error = %v", err)
	}
	if n != 0 {
		t.Errorf("second Seed() = %d, want 0", n)
	}

	presets, err := repo.ListPresets()
	if err != nil {
		t.Fatalf("ListPresets() error = %v", err)
	}
	if len(presets) != len(DefaultCatalog()) {
		t.Fatalf("ListPresets() returned %d presets, want %d", len(presets), len(DefaultCatalog()))
	}
	for i, want := range DefaultCatalog() {
		if presets[i].Name != want.Name {
			t.Errorf("preset %d = %q, want %q (display order)", i, presets[i].Name, want.Name)
		}
	}
}

func TestRepository_GetPresetByName(t *testing.T) {
	repo := newTestRepository(t)
	if _, err := repo.Seed(); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	tests := []struct {
		name       string
		preset     string
		wantHeight float64
		wantErr    bool
	}{
		{"storm", "Storm, maximum drift", 4.0, false},
		{"reversed", "Reversed drift", 1.8, false},
		{"unknown", "Tsunami", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := repo.GetPresetByName(tt.preset)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetPresetByName(%q) error = %v, wantErr %v", tt.preset, err, tt.wantErr)
			}
			if !tt.wantErr && p.WaveHeight != tt.wantHeight {
				t.Errorf("GetPresetByName(%q).WaveHeight = %v, want %v", tt.preset, p.WaveHeight, tt.wantHeight)
			}
		})
	}
}

func TestRepository_SavePresetUpserts(t *testing.T) {
	repo := newTestRepository(t)

	p := &models.Preset{Name: "Custom", Description: "first", WaveHeight: 1, WaveAngle: 5, TideRange: 1}
	if err := repo.SavePreset(p, 0); err != nil {
		t.Fatalf("SavePreset() error = %v", err)
	}
	firstID := p.ID
	if firstID == 0 {
		t.Error("SavePreset() did not set ID")
	}

	p.Description = "second"
	p.WaveAngle = -5
	if err := repo.SavePreset(p, 0); err != nil {
		t.Fatalf("SavePreset() update error = %v", err)
	}
	if p.ID != firstID {
		t.Errorf("ID after update = %d, want %d", p.ID, firstID)
	}

	got, err := repo.GetPresetByName("Custom")
	if err != nil {
		t.Fatalf("GetPresetByName() error = %v", err)
	}
	if got.Description != "second" || got.WaveAngle != -5 {
		t.Errorf("GetPresetByName() = %+v, want updated values", got)
	}
}

func TestDefaultCatalog_WithinControlDomains(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range DefaultCatalog() {
		if seen[p.Name] {
			t.Errorf("duplicate preset name %q", p.Name)
		}
		seen[p.Name] = true

		if p.WaveHeight != transport.Clamp(p.WaveHeight, 0, 4) {
			t.Errorf("%q height %v outside [0,4]", p.Name, p.WaveHeight)
		}
		if p.WaveAngle != transport.Clamp(p.WaveAngle, -60, 60) {
			t.Errorf("%q angle %v outside [-60,60]", p.Name, p.WaveAngle)
		}
		if p.TideRange != transport.Clamp(p.TideRange, 0, 8) {
			t.Errorf("%q tide %v outside [0,8]", p.Name, p.TideRange)
		}
	}
}
