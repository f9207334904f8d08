package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"smart-routine/pkg/sqlite"
)

func TestOpenCreatesSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "routine.db")

	db, err := sqlite.Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	for _, table := range []string{"tasks", "moods", "interactions"} {
		var name string
		err := db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "routine.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	first, err := sqlite.Migrate(ctx, db)
	if err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	second, err := sqlite.Migrate(ctx, db)
	if err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
	if first != second || first < 1 {
		t.Errorf("expected stable version >= 1, got %d then %d", first, second)
	}
}

func TestTimeRoundTripOrdering(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	early := time.Date(2024, 1, 10, 8, 0, 0, 0, loc)
	late := early.Add(500 * time.Millisecond)

	a, b := sqlite.FormatTime(early), sqlite.FormatTime(late)
	if !(a < b) {
		t.Errorf("expected %q < %q", a, b)
	}

	parsed, err := sqlite.ParseTime(b)
	if err != nil {
		t.Fatalf("ParseTime: %v", err)
	}
	if !parsed.Equal(late) {
		t.Errorf("round trip = %v, want %v", parsed, late)
	}
}
