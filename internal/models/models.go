package models

import (
	"database/sql"
	"time"
)

// HarvestRecord is one logged harvest, the raw material for the history
// signal.
type HarvestRecord struct {
	ID        string
	ZipCode   string
	Species   string
	Notes     sql.NullString
	TakenAt   time.Time
	CreatedAt time.Time
}
