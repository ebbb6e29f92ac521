package weather

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/huntwet/huntwet/internal/signal"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestCurrentLive(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/points/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"properties":{"forecastHourly":"%s/hourly"}}`, srv.URL)
	})
	mux.HandleFunc("/hourly", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"properties":{"periods":[{"temperature":40,"windSpeed":"8 mph","shortForecast":"Partly Cloudy"}]}}`))
	})
	srv = httptest.NewServer(mux)
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, testRNG())
	r := c.Current(context.Background(), 39.4817, -106.0384)

	if r.Provenance != signal.Live {
		t.Fatalf("Provenance = %q, want Live", r.Provenance)
	}
	if r.TemperatureF != 40 {
		t.Errorf("TemperatureF = %v, want 40", r.TemperatureF)
	}
	if r.WindMph != 8 {
		t.Errorf("WindMph = %v, want 8", r.WindMph)
	}
	if r.Condition != "Partly Cloudy" {
		t.Errorf("Condition = %q", r.Condition)
	}
	if !r.PressureEstimated {
		t.Error("PressureEstimated = false, NWS never reports pressure here")
	}
	if r.PressureInHg < 29.7 || r.PressureInHg > 30.3 {
		t.Errorf("PressureInHg = %v, outside estimate band [29.7,30.3]", r.PressureInHg)
	}
}

func TestCurrentFallback(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, testRNG())
	r := c.Current(context.Background(), 39.4817, -106.0384)

	if r.Provenance != signal.Simulated {
		t.Fatalf("Provenance = %q, want Simulated", r.Provenance)
	}
	if r.TemperatureF != 45 || r.PressureInHg != 29.9 || r.WindMph != 8 {
		t.Errorf("fallback bundle = %+v, want 45F/29.9inHg/8mph", r)
	}
	if r.Condition != "Unknown" {
		t.Errorf("Condition = %q, want Unknown", r.Condition)
	}
}

func TestCurrentFallbackOnEmptyPeriods(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/points/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"properties":{"forecastHourly":"%s/hourly"}}`, srv.URL)
	})
	mux.HandleFunc("/hourly", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"properties":{"periods":[]}}`))
	})
	srv = httptest.NewServer(mux)
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, testRNG())
	r := c.Current(context.Background(), 39.4817, -106.0384)
	if r.Provenance != signal.Simulated {
		t.Errorf("Provenance = %q, want Simulated on empty periods", r.Provenance)
	}
}

func TestParseWindSpeed(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want float64
	}{
		{"8 mph", 8},
		{"10 to 15 mph", 10},
		{"0 mph", 0},
		{"", 8},
		{"calm", 8},
	}
	for _, tt := range tests {
		if got := parseWindSpeed(tt.in); got != tt.want {
			t.Errorf("parseWindSpeed(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
