package weather

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/huntwet/huntwet/internal/httputil"
	"github.com/huntwet/huntwet/internal/signal"
)

const nwsBaseURL = "https://api.weather.gov"

// Neutral fallback bundle used when the provider fails entirely.
const (
	fallbackTempF     = 45.0
	fallbackPressure  = 29.9
	fallbackWindMph   = 8.0
	fallbackCondition = "Unknown"
)

// Reading is the weather signal for a location.
type Reading struct {
	TemperatureF      float64
	PressureInHg      float64
	WindMph           float64
	Condition         string
	PressureEstimated bool
	Provenance        signal.Provenance
}

// Client fetches current conditions from the National Weather Service.
// NWS rarely reports barometric pressure in its hourly forecast, so the
// pressure is drawn from a narrow band and marked estimated.
type Client struct {
	baseURL string
	client  *http.Client
	mu      sync.Mutex // rand.Rand is not safe for concurrent requests
	rng     *rand.Rand
}

func NewClient(rng *rand.Rand) *Client {
	return &Client{baseURL: nwsBaseURL, client: httputil.NewClient(), rng: rng}
}

// NewClientWithBaseURL is used by tests to point at a local server.
func NewClientWithBaseURL(baseURL string, rng *rand.Rand) *Client {
	return &Client{baseURL: baseURL, client: httputil.NewClient(), rng: rng}
}

type pointsResponse struct {
	Properties struct {
		ForecastHourly string `json:"forecastHourly"`
	} `json:"properties"`
}

type forecastResponse struct {
	Properties struct {
		Periods []struct {
			Temperature   float64 `json:"temperature"`
			WindSpeed     string  `json:"windSpeed"`
			ShortForecast string  `json:"shortForecast"`
		} `json:"periods"`
	} `json:"properties"`
}

// Current returns conditions at the given coordinates. It never fails: on
// any upstream error the neutral fallback bundle is returned, tagged
// Simulated.
func (c *Client) Current(ctx context.Context, lat, lon float64) Reading {
	reading, prov := signal.Fetch(ctx, func(ctx context.Context) (Reading, error) {
		return c.fetch(ctx, lat, lon)
	}, c.fallback)
	reading.Provenance = prov
	return reading
}

func (c *Client) fetch(ctx context.Context, lat, lon float64) (Reading, error) {
	var points pointsResponse
	url := fmt.Sprintf("%s/points/%.4f,%.4f", c.baseURL, lat, lon)
	if err := c.getJSON(ctx, url, &points); err != nil {
		return Reading{}, err
	}
	if points.Properties.ForecastHourly == "" {
		return Reading{}, fmt.Errorf("no hourly forecast URL for %.4f,%.4f", lat, lon)
	}

	var fc forecastResponse
	if err := c.getJSON(ctx, points.Properties.ForecastHourly, &fc); err != nil {
		return Reading{}, err
	}
	if len(fc.Properties.Periods) == 0 {
		return Reading{}, fmt.Errorf("empty forecast periods")
	}

	period := fc.Properties.Periods[0]
	return Reading{
		TemperatureF:      period.Temperature,
		PressureInHg:      c.estimatePressure(),
		WindMph:           parseWindSpeed(period.WindSpeed),
		Condition:         period.ShortForecast,
		PressureEstimated: true,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	return httputil.GetJSON(ctx, c.client, url, "application/geo+json", out)
}

// estimatePressure draws a plausible barometric pressure from
// [29.7, 30.3] inHg.
func (c *Client) estimatePressure() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return 29.7 + c.rng.Float64()*0.6
}

func (c *Client) fallback() Reading {
	return Reading{
		TemperatureF:      fallbackTempF,
		PressureInHg:      fallbackPressure,
		WindMph:           fallbackWindMph,
		Condition:         fallbackCondition,
		PressureEstimated: true,
	}
}

// parseWindSpeed extracts the leading number from NWS wind strings like
// "8 mph" or "10 to 15 mph".
func parseWindSpeed(s string) float64 {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return fallbackWindMph
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return fallbackWindMph
	}
	return v
}
