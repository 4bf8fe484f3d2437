// Package presets stores the catalog of illustrative coastal scenarios
// in SQLite.
package presets

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/ngmaloney/coast-terminal/internal/database"
	"github.com/ngmaloney/coast-terminal/internal/models"
	_ "modernc.org/sqlite"
)

// Repository reads and writes presets in a SQLite database file
type Repository struct {
	dbPath string
}

// NewRepository creates a preset repository backed by dbPath
func NewRepository(dbPath string) *Repository {
	return &Repository{dbPath: dbPath}
}

// SavePreset inserts or updates a preset by name
func (r *Repository) SavePreset(p *models.Preset, position int) error {
	db, err := database.Open(r.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	query := `
		INSERT INTO presets (name, description, wave_height, wave_angle, tide_range, position)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			description = excluded.description,
			wave_height = excluded.wave_height,
			wave_angle = excluded.wave_angle,
			tide_range = excluded.tide_range,
			position = excluded.position
	`

	if _, err := db.Exec(query, p.Name, p.Description, p.WaveHeight, p.WaveAngle, p.TideRange, position); err != nil {
		return fmt.Errorf("saving preset: %w", err)
	}

	// LastInsertId is unreliable on the update path, so read the id back.
	if err := db.QueryRow("SELECT id FROM presets WHERE name = ?", p.Name).Scan(&p.ID); err != nil {
		return fmt.Errorf("reading preset id: %w", err)
	}

	return nil
}

// ListPresets returns every preset in display order
func (r *Repository) ListPresets() ([]models.Preset, error) {
	db, err := database.Open(r.dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT id, name, description, wave_height, wave_angle, tide_range FROM presets ORDER BY position, name")
	if err != nil {
		return nil, fmt.Errorf("querying presets: %w", err)
	}
	defer rows.Close()

	var presets []models.Preset
	for rows.Next() {
		var p models.Preset
		var description sql.NullString

		if err := rows.Scan(&p.ID, &p.Name, &description, &p.WaveHeight, &p.WaveAngle, &p.TideRange); err != nil {
			return nil, fmt.Errorf("scanning preset: %w", err)
		}
		p.Description = description.String
		presets = append(presets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating presets: %w", err)
	}

	return presets, nil
}

// GetPresetByName looks up a single preset
func (r *Repository) GetPresetByName(name string) (*models.Preset, error) {
	db, err := database.Open(r.dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var p models.Preset
	var description sql.NullString
	err = db.QueryRow(
		"SELECT id, name, description, wave_height, wave_angle, tide_range FROM presets WHERE name = ?",
		name,
	).Scan(&p.ID, &p.Name, &description, &p.WaveHeight, &p.WaveAngle, &p.TideRange)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("preset %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("querying preset by name: %w", err)
	}
	p.Description = description.String

	return &p, nil
}

// NeedsSeeding reports whether the catalog is empty
func (r *Repository) NeedsSeeding() (bool, error) {
	db, err := database.Open(r.dbPath)
	if err != nil {
		return false, err
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM presets").Scan(&count); err != nil {
		return false, fmt.Errorf("counting presets: %w", err)
	}
	return count == 0, nil
}

// Seed writes the built-in catalog when the table is empty. It returns
// the number of presets written.
func (r *Repository) Seed() (int, error) {
	needed, err := r.NeedsSeeding()
	if err != nil {
		return 0, err
	}
	if !needed {
		return 0, nil
	}

	log.Println("Preset catalog empty, seeding built-in scenarios...")
	catalog := DefaultCatalog()
	for i := range catalog {
		if err := r.SavePreset(&catalog[i], i); err != nil {
			return i, fmt.Errorf("seeding %q: %w", catalog[i].Name, err)
		}
	}
	log.Printf("Seeded %d presets into %s", len(catalog), r.dbPath)

	return len(catalog), nil
}
