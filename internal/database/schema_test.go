package database

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func TestEnsureSchema_KeepsCatalogOnReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	if err := EnsureSchema(dbPath); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	_, err = db.Exec(`
		INSERT INTO presets (name, description, wave_height, wave_angle, tide_range, position) VALUES
			('Storm', 'Big oblique swell', 4.0, 45, 4.0, 2),
			('Calm', NULL, 0.6, 0, 1.5, 1)
	`)
	db.Close()
	if err != nil {
		t.Fatalf("seeding rows: %v", err)
	}

	// Opening the catalog again, as every repository call does, must not
	// rebuild the table or its index.
	for i := 0; i < 2; i++ {
		if err := EnsureSchema(dbPath); err != nil {
			t.Fatalf("EnsureSchema rerun %d failed: %v", i+1, err)
		}
	}

	db, err = sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT name, description, wave_height, wave_angle, tide_range, position FROM presets ORDER BY position")
	if err != nil {
		t.Fatalf("querying presets: %v", err)
	}
	defer rows.Close()

	type row struct {
		name        string
		description sql.NullString
		height      float64
		angle       float64
		tide        float64
		position    int
	}
	want := []row{
		{"Calm", sql.NullString{}, 0.6, 0, 1.5, 1},
		{"Storm", sql.NullString{String: "Big oblique swell", Valid: true}, 4, 45, 4, 2},
	}

	var got []row
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.name, &r.description, &r.height, &r.angle, &r.tide, &r.position); err != nil {
			t.Fatalf("scanning preset: %v", err)
		}
		got = append(got, r)
	}
	if len(got) != len(want) {
		t.Fatalf("rows = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	// The unique name index survives the reruns
	if _, err := db.Exec(`INSERT INTO presets (name, wave_height, wave_angle, tide_range) VALUES ('Calm', 1, 1, 1)`); err == nil {
		t.Error("duplicate name accepted after EnsureSchema rerun")
	}
}

func TestEnsureSchema_UniqueName(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	if err := EnsureSchema(dbPath); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	defer db.Close()

	insert := `INSERT INTO presets (name, wave_height, wave_angle, tide_range) VALUES ('Dup', 1, 1, 1)`
	if _, err := db.Exec(insert); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if _, err := db.Exec(insert); err == nil {
		t.Error("second insert with the same name succeeded, want unique violation")
	}
}
