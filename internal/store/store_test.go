package store_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/huntwet/huntwet/internal/models"
	"github.com/huntwet/huntwet/internal/store"

	_ "modernc.org/sqlite"
)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	s := store.New(db)
	if err := s.Migrate(); err != nil {
		t.Fatal(err)
	}
	return s
}

func insertHarvest(t *testing.T, s *store.Store, zip, species string, takenAt time.Time) {
	t.Helper()
	err := s.InsertHarvest(models.HarvestRecord{
		ID:      uuid.NewString(),
		ZipCode: zip,
		Species: species,
		TakenAt: takenAt,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	t.Parallel()
	s := setupTestStore(t)
	if err := s.Migrate(); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestCountRecentHarvests(t *testing.T) {
	t.Parallel()
	s := setupTestStore(t)
	now := time.Now().UTC()

	insertHarvest(t, s, "80424", "deer", now.AddDate(0, 0, -2))
	insertHarvest(t, s, "80424", "deer", now.AddDate(0, 0, -10))
	insertHarvest(t, s, "80424", "turkey", now.AddDate(0, 0, -45)) // outside window
	insertHarvest(t, s, "12345", "deer", now.AddDate(0, 0, -1))    // other zip

	count, err := s.CountRecentHarvests("80424", now.AddDate(0, 0, -30))
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestCountRecentHarvestsEmpty(t *testing.T) {
	t.Parallel()
	s := setupTestStore(t)
	count, err := s.CountRecentHarvests("80424", time.Now().AddDate(0, 0, -30))
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestGetHarvestsNewestFirst(t *testing.T) {
	t.Parallel()
	s := setupTestStore(t)
	now := time.Now().UTC()

	insertHarvest(t, s, "80424", "turkey", now.AddDate(0, 0, -5))
	insertHarvest(t, s, "80424", "deer", now.AddDate(0, 0, -1))

	records, err := s.GetHarvests("80424", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Species != "deer" {
		t.Errorf("records[0].Species = %q, want deer (newest first)", records[0].Species)
	}
}

func TestGetHarvestsRespectsLimit(t *testing.T) {
	t.Parallel()
	s := setupTestStore(t)
	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		insertHarvest(t, s, "80424", "deer", now.AddDate(0, 0, -i))
	}

	records, err := s.GetHarvests("80424", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Errorf("got %d records, want 3", len(records))
	}
}

func TestNotesRoundTrip(t *testing.T) {
	t.Parallel()
	s := setupTestStore(t)
	err := s.InsertHarvest(models.HarvestRecord{
		ID:      uuid.NewString(),
		ZipCode: "80424",
		Species: "deer",
		Notes:   sql.NullString{String: "8-point near the creek", Valid: true},
		TakenAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatal(err)
	}

	records, err := s.GetHarvests("80424", 1)
	if err != nil {
		t.Fatal(err)
	}
	if !records[0].Notes.Valid || records[0].Notes.String != "8-point near the creek" {
		t.Errorf("Notes = %+v", records[0].Notes)
	}
}
