package store

import (
	"database/sql"
	"time"

	"github.com/huntwet/huntwet/internal/models"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InsertHarvest(rec models.HarvestRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO harvest_records (id, zip_code, species, notes, taken_at)
		VALUES (?, ?, ?, ?, ?)
	`, rec.ID, rec.ZipCode, rec.Species, rec.Notes, rec.TakenAt)
	return err
}

// CountRecentHarvests counts records for a ZIP code taken since the cutoff.
func (s *Store) CountRecentHarvests(zip string, since time.Time) (int, error) {
	row := s.db.QueryRow(`
		SELECT COUNT(*) FROM harvest_records
		WHERE zip_code = ? AND taken_at >= ?
	`, zip, since)

	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// GetHarvests returns the most recent records for a ZIP code, newest first.
func (s *Store) GetHarvests(zip string, limit int) ([]models.HarvestRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, zip_code, species, notes, taken_at, created_at
		FROM harvest_records
		WHERE zip_code = ?
		ORDER BY taken_at DESC
		LIMIT ?
	`, zip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.HarvestRecord
	for rows.Next() {
		var rec models.HarvestRecord
		if err := rows.Scan(&rec.ID, &rec.ZipCode, &rec.Species, &rec.Notes, &rec.TakenAt, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
