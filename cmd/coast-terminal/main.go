package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/coast-terminal/internal/config"
	"github.com/ngmaloney/coast-terminal/internal/models"
	"github.com/ngmaloney/coast-terminal/internal/params"
	"github.com/ngmaloney/coast-terminal/internal/pipeline"
	"github.com/ngmaloney/coast-terminal/internal/presets"
	"github.com/ngmaloney/coast-terminal/internal/render"
	"github.com/ngmaloney/coast-terminal/internal/ui"
)

func main() {
	// The program owns the terminal, so logs go to a file or nowhere.
	if os.Getenv("COAST_DEBUG") != "" {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			fmt.Printf("Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg := config.Load()

	dpr := flag.Float64("dpr", cfg.DevicePixelRatio, "Device pixel ratio of the raster preview")
	cellWidth := flag.Float64("cell-width", cfg.CellWidth, "Logical canvas units per terminal column")
	label := flag.String("label", cfg.Label, "Text drawn above the drift arrow")
	dbPath := flag.String("db", cfg.DBPath, "Path of the preset catalog database")
	exportDir := flag.String("export-dir", cfg.ExportDir, "Directory for PNG snapshots")
	presetName := flag.String("preset", "", "Name of a catalog preset to start from (e.g. \"Storm, maximum drift\")")
	flag.Parse()

	repo := presets.NewRepository(*dbPath)

	initial := models.DefaultParameters()
	if *presetName != "" {
		if _, err := repo.Seed(); err != nil {
			fmt.Printf("Error loading preset catalog: %v\n", err)
			os.Exit(1)
		}
		p, err := repo.GetPresetByName(*presetName)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		initial = ui.BoundParameters(p.Parameters())
	}

	store := params.NewStore(initial)
	// No display until the program reports the terminal size.
	surface := render.NewRasterSurface()
	surface.Detach()
	defer surface.Close()
	pipe := pipeline.Attach(store, surface, render.NewRenderer(*label))

	model := ui.NewModel(store, pipe, surface, repo, ui.Options{
		CellWidth:        *cellWidth,
		DevicePixelRatio: *dpr,
		ExportDir:        *exportDir,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
