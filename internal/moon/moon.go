package moon

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/huntwet/huntwet/internal/httputil"
	"github.com/huntwet/huntwet/internal/signal"
)

const usnoBaseURL = "https://api.usno.navy.mil"

// Phase names in cycle order, new moon first.
var phaseNames = []string{
	"New Moon",
	"Waxing Crescent",
	"First Quarter",
	"Waxing Gibbous",
	"Full Moon",
	"Waning Gibbous",
	"Third Quarter",
	"Waning Crescent",
}

// Reading is the lunar signal for a date.
type Reading struct {
	IlluminationPct float64
	PhaseName       string
	Provenance      signal.Provenance
}

// Client fetches moon phase data from the USNO astronomical API, falling
// back to a deterministic simulation when the upstream is unavailable.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient() *Client {
	return &Client{baseURL: usnoBaseURL, client: httputil.NewClient()}
}

// NewClientWithBaseURL is used by tests to point at a local server.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{baseURL: baseURL, client: httputil.NewClient()}
}

type usnoResponse struct {
	PhaseData []struct {
		Phase        string  `json:"phase"`
		Illumination float64 `json:"illumination"`
	} `json:"phasedata"`
}

// Illumination returns the lunar signal for a date. It never fails: when
// the USNO source is down or malformed the result is simulated from the
// date and tagged as such.
func (c *Client) Illumination(ctx context.Context, date time.Time) Reading {
	reading, prov := signal.Fetch(ctx, func(ctx context.Context) (Reading, error) {
		return c.fetch(ctx, date)
	}, func() Reading {
		return Simulate(date)
	})
	reading.Provenance = prov
	return reading
}

func (c *Client) fetch(ctx context.Context, date time.Time) (Reading, error) {
	url := fmt.Sprintf("%s/moon/phase?date=%s", c.baseURL, date.Format("2006-01-02"))

	var data usnoResponse
	if err := httputil.GetJSON(ctx, c.client, url, "", &data); err != nil {
		return Reading{}, fmt.Errorf("moon phase: %w", err)
	}
	if len(data.PhaseData) == 0 {
		return Reading{}, fmt.Errorf("no phase data for %s", date.Format("2006-01-02"))
	}

	pd := data.PhaseData[0]
	if pd.Illumination < 0 || pd.Illumination > 100 {
		return Reading{}, fmt.Errorf("illumination %.1f out of range", pd.Illumination)
	}
	return Reading{IlluminationPct: pd.Illumination, PhaseName: pd.Phase}, nil
}

// Simulate derives a lunar reading from the day of month alone: the phase
// index walks an 8-phase cycle and illumination follows |sin| over a
// 30-day period. Deterministic for a given date.
func Simulate(date time.Time) Reading {
	day := date.Day()
	idx := int(float64(day)/30.0*8.0) % 8
	illum := math.Round(math.Abs(math.Sin(float64(day)/30.0*math.Pi)) * 100)
	return Reading{
		IlluminationPct: illum,
		PhaseName:       phaseNames[idx],
		Provenance:      signal.Simulated,
	}
}
