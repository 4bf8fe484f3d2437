// Package config loads settings shared by the coast-terminal binaries
// from the environment. Command-line flags override what it returns.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/ngmaloney/coast-terminal/internal/database"
	"github.com/ngmaloney/coast-terminal/internal/render"
)

// Config holds the environment-derived settings
type Config struct {
	DBPath           string
	DevicePixelRatio float64
	CellWidth        float64 // logical units per terminal column
	Label            string
	ExportDir        string
}

// Load reads COAST_* variables, falling back to defaults
func Load() Config {
	return Config{
		DBPath:           getEnv("COAST_DB_PATH", database.DBPath()),
		DevicePixelRatio: getEnvFloat("COAST_DPR", 1),
		CellWidth:        getEnvFloat("COAST_CELL_WIDTH", 8),
		Label:            getEnv("COAST_LABEL", render.DefaultLabel),
		ExportDir:        getEnv("COAST_EXPORT_DIR", "exports"),
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvFloat is getEnv for positive numbers. Unparseable or
// non-positive values are logged and replaced by the default.
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f <= 0 {
		log.Printf("Ignoring %s=%q: want a positive number", key, value)
		return defaultValue
	}
	return f
}
