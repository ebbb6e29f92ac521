package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/huntwet/huntwet/internal/metrics"
	"github.com/huntwet/huntwet/internal/models"
)

const logbookListLimit = 50

type logbookRequest struct {
	ZipCode string `json:"zipCode"`
	Species string `json:"species"`
	Notes   string `json:"notes"`
	TakenAt string `json:"takenAt"`
}

type logbookEntry struct {
	ID      string `json:"id"`
	ZipCode string `json:"zipCode"`
	Species string `json:"species"`
	Notes   string `json:"notes,omitempty"`
	TakenAt string `json:"takenAt"`
}

func (s *Server) handleLogbookPost(w http.ResponseWriter, r *http.Request) {
	var req logbookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !zipPattern.MatchString(req.ZipCode) {
		respondError(w, http.StatusBadRequest, "Invalid ZIP code format. Must be 5 digits.")
		return
	}
	if strings.TrimSpace(req.Species) == "" {
		respondError(w, http.StatusBadRequest, "species is required")
		return
	}

	takenAt := time.Now().UTC()
	if req.TakenAt != "" {
		parsed, err := time.Parse(dateLayout, req.TakenAt)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid date format. Must be YYYY-MM-DD.")
			return
		}
		takenAt = parsed
	}

	rec := models.HarvestRecord{
		ID:      uuid.NewString(),
		ZipCode: req.ZipCode,
		Species: strings.TrimSpace(req.Species),
		TakenAt: takenAt,
	}
	if req.Notes != "" {
		rec.Notes = sql.NullString{String: req.Notes, Valid: true}
	}

	if err := s.store.InsertHarvest(rec); err != nil {
		respondError(w, http.StatusInternalServerError, "could not save record")
		return
	}
	metrics.HarvestsLogged.Inc()

	respondJSON(w, http.StatusCreated, toEntry(rec))
}

func (s *Server) handleLogbookList(w http.ResponseWriter, r *http.Request) {
	zip := mux.Vars(r)["zip"]
	if !zipPattern.MatchString(zip) {
		respondError(w, http.StatusBadRequest, "Invalid ZIP code format. Must be 5 digits.")
		return
	}

	records, err := s.store.GetHarvests(zip, logbookListLimit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "could not load records")
		return
	}

	entries := make([]logbookEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, toEntry(rec))
	}
	respondJSON(w, http.StatusOK, entries)
}

func toEntry(rec models.HarvestRecord) logbookEntry {
	entry := logbookEntry{
		ID:      rec.ID,
		ZipCode: rec.ZipCode,
		Species: rec.Species,
		TakenAt: rec.TakenAt.Format(dateLayout),
	}
	if rec.Notes.Valid {
		entry.Notes = rec.Notes.String
	}
	return entry
}
