package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/huntwet/huntwet/internal/config"
	"github.com/huntwet/huntwet/internal/geo"
	"github.com/huntwet/huntwet/internal/history"
	"github.com/huntwet/huntwet/internal/moon"
	"github.com/huntwet/huntwet/internal/predict"
	"github.com/huntwet/huntwet/internal/store"
	"github.com/huntwet/huntwet/internal/weather"
)

// Provider interfaces, satisfied by the real adapters and by test fakes.

type GeoResolver interface {
	Resolve(ctx context.Context, zip string) (geo.Location, error)
}

type LunarProvider interface {
	Illumination(ctx context.Context, date time.Time) moon.Reading
}

type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) weather.Reading
}

type HistoryProvider interface {
	RecentActivity(zip string, now time.Time) history.Reading
}

type Server struct {
	store   *store.Store
	geo     GeoResolver
	lunar   LunarProvider
	weather WeatherProvider
	history HistoryProvider
	scorer  *predict.Scorer
	cfg     config.Scoring
	port    string
}

func NewServer(st *store.Store, g GeoResolver, l LunarProvider, w WeatherProvider, h HistoryProvider, scorer *predict.Scorer, cfg config.Scoring, port string) *Server {
	return &Server{
		store:   st,
		geo:     g,
		lunar:   l,
		weather: w,
		history: h,
		scorer:  scorer,
		cfg:     cfg,
		port:    port,
	}
}

func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/api/predict", s.handlePredictPost).Methods("POST")
	r.HandleFunc("/api/predict/{zip}", s.handlePredictGet).Methods("GET")
	r.HandleFunc("/api/predict/{zip}/{date}", s.handlePredictGet).Methods("GET")
	r.HandleFunc("/api/logbook", s.handleLogbookPost).Methods("POST")
	r.HandleFunc("/api/logbook/{zip}", s.handleLogbookList).Methods("GET")
	return corsMiddleware(r)
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// corsMiddleware answers preflight requests and sets permissive headers on
// everything else, mirroring what the frontend expects.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("api: encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
