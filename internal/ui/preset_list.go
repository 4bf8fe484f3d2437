package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/ngmaloney/coast-terminal/internal/models"
)

// presetItem wraps a Preset for use in a list
type presetItem struct {
	preset models.Preset
}

// FilterValue implements list.Item
func (p presetItem) FilterValue() string {
	return p.preset.Name
}

// Title implements list.DefaultItem
func (p presetItem) Title() string {
	return p.preset.Name
}

// Description implements list.DefaultItem
func (p presetItem) Description() string {
	desc := fmt.Sprintf("H %.1f m • θ %.0f° • tide %.1f m", p.preset.WaveHeight, p.preset.WaveAngle, p.preset.TideRange)
	if p.preset.Description != "" {
		desc = p.preset.Description + " • " + desc
	}
	return desc
}

// createPresetList creates a list.Model from presets
func createPresetList(presets []models.Preset, width, height int) list.Model {
	items := make([]list.Item, len(presets))
	for i, preset := range presets {
		items[i] = presetItem{preset: preset}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Coastal Scenarios"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)

	return l
}
