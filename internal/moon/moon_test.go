package moon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/huntwet/huntwet/internal/signal"
)

func TestIlluminationLive(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("date"); got != "2024-11-05" {
			t.Errorf("date query = %q, want 2024-11-05", got)
		}
		w.Write([]byte(`{"phasedata":[{"phase":"Waning Crescent","illumination":15}]}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL)
	date := time.Date(2024, time.November, 5, 0, 0, 0, 0, time.UTC)
	r := c.Illumination(context.Background(), date)

	if r.Provenance != signal.Live {
		t.Errorf("Provenance = %q, want Live", r.Provenance)
	}
	if r.IlluminationPct != 15 {
		t.Errorf("IlluminationPct = %v, want 15", r.IlluminationPct)
	}
	if r.PhaseName != "Waning Crescent" {
		t.Errorf("PhaseName = %q", r.PhaseName)
	}
}

func TestIlluminationFallsBack(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"phasedata": "not a list"`))
		}},
		{"empty phasedata", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"phasedata":[]}`))
		}},
		{"illumination out of range", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"phasedata":[{"phase":"Full Moon","illumination":250}]}`))
		}},
	}

	date := time.Date(2024, time.November, 5, 0, 0, 0, 0, time.UTC)
	want := Simulate(date)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewClientWithBaseURL(srv.URL)
			r := c.Illumination(context.Background(), date)

			if r.Provenance != signal.Simulated {
				t.Errorf("Provenance = %q, want Simulated", r.Provenance)
			}
			if r.IlluminationPct != want.IlluminationPct || r.PhaseName != want.PhaseName {
				t.Errorf("fallback reading = %+v, want %+v", r, want)
			}
		})
	}
}

func TestSimulateDeterministic(t *testing.T) {
	t.Parallel()
	date := time.Date(2024, time.November, 5, 0, 0, 0, 0, time.UTC)
	a := Simulate(date)
	b := Simulate(date)
	if a != b {
		t.Errorf("Simulate not deterministic: %+v vs %+v", a, b)
	}
	if a.Provenance != signal.Simulated {
		t.Errorf("Provenance = %q, want Simulated", a.Provenance)
	}
}

func TestSimulateRanges(t *testing.T) {
	t.Parallel()
	for day := 1; day <= 31; day++ {
		date := time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
		r := Simulate(date)
		if r.IlluminationPct < 0 || r.IlluminationPct > 100 {
			t.Errorf("day %d: illumination %v outside [0,100]", day, r.IlluminationPct)
		}
		if r.PhaseName == "" {
			t.Errorf("day %d: empty phase name", day)
		}
	}
}

func TestSimulatePhaseCycle(t *testing.T) {
	t.Parallel()
	// Day 1 sits at the start of the cycle, day 15 near full.
	if got := Simulate(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)); got.PhaseName != "New Moon" {
		t.Errorf("day 1 phase = %q, want New Moon", got.PhaseName)
	}
	if got := Simulate(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)); got.PhaseName != "Full Moon" {
		t.Errorf("day 15 phase = %q, want Full Moon", got.PhaseName)
	}
}
