package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/huntwet/huntwet/internal/geo"
	"github.com/huntwet/huntwet/internal/history"
	"github.com/huntwet/huntwet/internal/metrics"
	"github.com/huntwet/huntwet/internal/moon"
	"github.com/huntwet/huntwet/internal/predict"
	"github.com/huntwet/huntwet/internal/signal"
	"github.com/huntwet/huntwet/internal/weather"
)

var zipPattern = regexp.MustCompile(`^\d{5}$`)

const dateLayout = "2006-01-02"

type coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type dataIntegration struct {
	Location       signal.Provenance `json:"location"`
	MoonPhase      signal.Provenance `json:"moonPhase"`
	Weather        signal.Provenance `json:"weather"`
	RecentActivity signal.Provenance `json:"recentActivity"`
}

type predictionResponse struct {
	ZipCode  string `json:"zipCode"`
	Date     string `json:"date"`
	Location string `json:"location"`
	Agency   string `json:"wildlifeAgency,omitempty"`
	predict.Result
	Coordinates     *coordinates    `json:"coordinates,omitempty"`
	DataIntegration dataIntegration `json:"dataIntegration"`
	LastUpdated     time.Time       `json:"lastUpdated"`
}

type predictRequest struct {
	ZipCode string `json:"zipCode"`
	Date    string `json:"date"`
}

func (s *Server) handlePredictGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	s.servePredict(w, r, vars["zip"], vars["date"])
}

func (s *Server) handlePredictPost(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	s.servePredict(w, r, req.ZipCode, req.Date)
}

func (s *Server) servePredict(w http.ResponseWriter, r *http.Request, zip, dateStr string) {
	if !zipPattern.MatchString(zip) {
		respondError(w, http.StatusBadRequest, "Invalid ZIP code format. Must be 5 digits.")
		return
	}

	date := time.Now().UTC()
	if dateStr != "" {
		parsed, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid date format. Must be YYYY-MM-DD.")
			return
		}
		date = parsed
	}

	resp := s.predictFor(r.Context(), zip, date)

	metrics.PredictionsTotal.WithLabelValues(resp.ActivityLevel).Inc()
	if resp.Degraded {
		metrics.DegradedPredictionsTotal.Inc()
	}
	respondJSON(w, http.StatusOK, resp)
}

// predictFor runs the full pipeline: resolve the location, fan out to the
// three signal providers, collect every outcome, then score. Provider
// failures never propagate; they surface only as provenance flags.
func (s *Server) predictFor(ctx context.Context, zip string, date time.Time) predictionResponse {
	loc, locProv := s.resolveLocation(ctx, zip)

	var (
		wg      sync.WaitGroup
		lunar   moon.Reading
		current weather.Reading
		hist    history.Reading
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		lunar = s.timedLunar(ctx, date)
	}()
	go func() {
		defer wg.Done()
		current = s.timedWeather(ctx, loc.Latitude, loc.Longitude)
	}()
	go func() {
		defer wg.Done()
		hist = s.timedHistory(zip, date)
	}()
	wg.Wait()

	result := s.scorer.Score(date, predict.Bundle{
		Lunar:   lunar,
		Weather: current,
		History: hist,
	})

	resp := predictionResponse{
		ZipCode:  zip,
		Date:     date.Format(dateLayout),
		Location: locationLabel(loc),
		Agency:   loc.Agency,
		Result:   result,
		DataIntegration: dataIntegration{
			Location:       locProv,
			MoonPhase:      lunar.Provenance,
			Weather:        current.Provenance,
			RecentActivity: hist.Provenance,
		},
		LastUpdated: time.Now().UTC(),
	}
	if locProv == signal.Live {
		resp.Coordinates = &coordinates{Lat: loc.Latitude, Lon: loc.Longitude}
	}
	return resp
}

func (s *Server) resolveLocation(ctx context.Context, zip string) (geo.Location, signal.Provenance) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.ProviderTimeout))
	defer cancel()

	start := time.Now()
	loc, err := s.geo.Resolve(ctx, zip)
	metrics.ProviderLatency.WithLabelValues("geo").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderCallsTotal.WithLabelValues("geo", "fallback").Inc()
		log.Printf("api: resolve %s: %v", zip, err)
		return geo.Unknown(), signal.Simulated
	}
	metrics.ProviderCallsTotal.WithLabelValues("geo", "live").Inc()
	return loc, signal.Live
}

func (s *Server) timedLunar(ctx context.Context, date time.Time) moon.Reading {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.ProviderTimeout))
	defer cancel()

	start := time.Now()
	reading := s.lunar.Illumination(ctx, date)
	metrics.ProviderLatency.WithLabelValues("moon").Observe(time.Since(start).Seconds())
	metrics.ProviderCallsTotal.WithLabelValues("moon", outcome(reading.Provenance)).Inc()
	return reading
}

func (s *Server) timedWeather(ctx context.Context, lat, lon float64) weather.Reading {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.ProviderTimeout))
	defer cancel()

	start := time.Now()
	reading := s.weather.Current(ctx, lat, lon)
	metrics.ProviderLatency.WithLabelValues("weather").Observe(time.Since(start).Seconds())
	metrics.ProviderCallsTotal.WithLabelValues("weather", outcome(reading.Provenance)).Inc()
	return reading
}

func (s *Server) timedHistory(zip string, now time.Time) history.Reading {
	start := time.Now()
	reading := s.history.RecentActivity(zip, now)
	metrics.ProviderLatency.WithLabelValues("history").Observe(time.Since(start).Seconds())
	metrics.ProviderCallsTotal.WithLabelValues("history", outcome(reading.Provenance)).Inc()
	return reading
}

func outcome(p signal.Provenance) string {
	if p == signal.Live {
		return "live"
	}
	return "fallback"
}

func locationLabel(loc geo.Location) string {
	if loc.RegionCode == "" {
		return loc.PlaceName
	}
	return fmt.Sprintf("%s, %s", loc.PlaceName, loc.RegionCode)
}
