package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ngmaloney/coast-terminal/internal/render"
)

// formulaNote explains what the arrow encodes
const formulaNote = "index ∝ H²·sin(2θ), direction from sign"

type legendEntry struct {
	name  string
	color colorful.Color
}

var legendEntries = []legendEntry{
	{"Sea", render.SeaColor},
	{"Beach", render.BeachColor},
	{"Longshore drift", render.DriftColor},
}

func swatch(c colorful.Color) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("██")
}

// renderLegend lists the scene colours, the formula note and the live
// transport index.
func renderLegend(index float64) string {
	lines := []string{titleStyle.Render("Legend")}
	for _, e := range legendEntries {
		lines = append(lines, fmt.Sprintf("%s %s", swatch(e.color), e.name))
	}
	lines = append(lines,
		"",
		mutedStyle.Render(formulaNote),
		fmt.Sprintf("%s %s", labelStyle.Render("Index:"), indexStyle.Render(fmt.Sprintf("%+.2f", index))),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
