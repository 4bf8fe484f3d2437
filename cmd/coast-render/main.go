// Command coast-render draws one frame of the coastal scene without a
// terminal: it writes a PNG and can export the geometry as shapefiles.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ngmaloney/coast-terminal/internal/config"
	"github.com/ngmaloney/coast-terminal/internal/export"
	"github.com/ngmaloney/coast-terminal/internal/models"
	"github.com/ngmaloney/coast-terminal/internal/params"
	"github.com/ngmaloney/coast-terminal/internal/pipeline"
	"github.com/ngmaloney/coast-terminal/internal/presets"
	"github.com/ngmaloney/coast-terminal/internal/render"
	"github.com/ngmaloney/coast-terminal/internal/ui"
)

func main() {
	cfg := config.Load()

	height := flag.Float64("height", models.DefaultWaveHeight, "Significant wave height in metres")
	angle := flag.Float64("angle", models.DefaultWaveAngle, "Wave approach angle in degrees from shore-normal")
	tide := flag.Float64("tide", models.DefaultTideRange, "Tidal range in metres")
	width := flag.Float64("width", 800, "Logical canvas width")
	dpr := flag.Float64("dpr", cfg.DevicePixelRatio, "Device pixel ratio")
	label := flag.String("label", cfg.Label, "Text drawn above the drift arrow")
	out := flag.String("out", "scene.png", "PNG output path")
	shpDir := flag.String("shp", "", "Directory for shapefile export (disabled when empty)")
	presetName := flag.String("preset", "", "Name of a catalog preset; overrides -height, -angle and -tide")
	dbPath := flag.String("db", cfg.DBPath, "Path of the preset catalog database")
	flag.Parse()

	// Flags play the part of the panel's controls and obey the same bounds.
	raw := models.Parameters{
		Wave: models.WaveParameters{Height: *height, Angle: *angle},
		Tide: models.TideParameter{Range: *tide},
	}
	p := ui.BoundParameters(raw)
	if p != raw {
		log.Printf("Parameters bounded to height %.1f m, angle %.0f°, tide %.1f m", p.Wave.Height, p.Wave.Angle, p.Tide.Range)
	}

	if *presetName != "" {
		repo := presets.NewRepository(*dbPath)
		if _, err := repo.Seed(); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading preset catalog: %v\n", err)
			os.Exit(1)
		}
		preset, err := repo.GetPresetByName(*presetName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log.Printf("Using preset %q", preset.Name)
		p = ui.BoundParameters(preset.Parameters())
	}

	store := params.NewStore(p)
	surface := render.NewRasterSurface()
	defer surface.Close()
	pipe := pipeline.New(surface, render.NewRenderer(*label))
	store.Subscribe(pipe.Redraw)

	// Setting the viewport triggers the single render pass.
	store.SetViewport(models.Viewport{LogicalWidth: *width, DevicePixelRatio: *dpr})

	g := pipe.Geometry()
	if g.Frame.Empty() {
		fmt.Fprintf(os.Stderr, "Error: empty canvas (width %.0f, dpr %.2f)\n", *width, *dpr)
		os.Exit(1)
	}
	log.Printf("Rendered %dx%d frame, transport index %.3f (%d redraws, %d skipped, %d allocations)",
		g.Frame.DeviceWidth, g.Frame.DeviceHeight, g.Index, pipe.Redraws(), pipe.Skipped(), surface.Allocations())

	if err := export.WritePNG(*out, surface.Image()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing PNG: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Wrote %s", *out)

	if *shpDir != "" {
		paths, err := export.WriteShapefiles(*shpDir, g)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing shapefiles: %v\n", err)
			os.Exit(1)
		}
		for _, path := range paths {
			log.Printf("Wrote %s", path)
		}
	}
}
