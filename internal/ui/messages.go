package ui

import (
	"fmt"
	"image"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/coast-terminal/internal/export"
	"github.com/ngmaloney/coast-terminal/internal/models"
	"github.com/ngmaloney/coast-terminal/internal/presets"
)

// presetsFetchedMsg is sent when the preset catalog has been loaded
type presetsFetchedMsg struct {
	presets []models.Preset
}

// exportedMsg is sent when a snapshot has been written
type exportedMsg struct {
	path string
	err  error
}

// errMsg is a message type for errors
type errMsg struct {
	err error
}

// fetchPresets seeds the catalog on first use and lists it
func fetchPresets(r *presets.Repository) tea.Cmd {
	return func() tea.Msg {
		if _, err := r.Seed(); err != nil {
			return errMsg{err: fmt.Errorf("loading preset catalog: %w", err)}
		}
		list, err := r.ListPresets()
		if err != nil {
			return errMsg{err: fmt.Errorf("loading preset catalog: %w", err)}
		}
		return presetsFetchedMsg{presets: list}
	}
}

// exportSnapshot writes img to a timestamped PNG in dir. The image must
// not be drawn into while the command runs.
func exportSnapshot(dir string, img image.Image, now time.Time) tea.Cmd {
	return func() tea.Msg {
		path := filepath.Join(dir, fmt.Sprintf("coast-%s.png", now.Format("20060102-150405")))
		err := export.WritePNG(path, img)
		return exportedMsg{path: path, err: err}
	}
}
