package geo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/huntwet/huntwet/internal/httputil"
)

const zippopotamBaseURL = "https://api.zippopotam.us"

// ErrLocationUnavailable signals that a ZIP code could not be resolved.
// Location is enrichment, not a hard dependency: callers proceed with
// Unknown() rather than failing the request.
var ErrLocationUnavailable = errors.New("location unavailable")

// Location describes the place behind a ZIP code.
type Location struct {
	PlaceName  string
	RegionCode string // two-letter state abbreviation
	StateName  string
	Agency     string // state wildlife agency
	Latitude   float64
	Longitude  float64
}

// Unknown returns the placeholder used when resolution fails.
func Unknown() Location {
	return Location{PlaceName: "Unknown Area", Agency: "State Wildlife Agency"}
}

// Resolver looks up US ZIP codes via the Zippopotam API.
type Resolver struct {
	baseURL string
	client  *http.Client
}

func NewResolver() *Resolver {
	return &Resolver{
		baseURL: zippopotamBaseURL,
		client:  httputil.NewClient(),
	}
}

// NewResolverWithBaseURL is used by tests to point at a local server.
func NewResolverWithBaseURL(baseURL string) *Resolver {
	return &Resolver{baseURL: baseURL, client: httputil.NewClient()}
}

type zippopotamResponse struct {
	Places []struct {
		PlaceName string `json:"place name"`
		State     string `json:"state"`
		StateAbbr string `json:"state abbreviation"`
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"places"`
}

// Resolve maps a 5-digit ZIP code to a Location. The ZIP is assumed to be
// format-validated already.
func (r *Resolver) Resolve(ctx context.Context, zip string) (Location, error) {
	url := fmt.Sprintf("%s/us/%s", r.baseURL, zip)

	var data zippopotamResponse
	if err := httputil.GetJSON(ctx, r.client, url, "", &data); err != nil {
		return Location{}, fmt.Errorf("%w: %v", ErrLocationUnavailable, err)
	}
	if len(data.Places) == 0 {
		return Location{}, fmt.Errorf("%w: no places for %s", ErrLocationUnavailable, zip)
	}

	place := data.Places[0]
	lat, _ := strconv.ParseFloat(place.Latitude, 64)
	lon, _ := strconv.ParseFloat(place.Longitude, 64)

	loc := Location{
		PlaceName:  place.PlaceName,
		RegionCode: place.StateAbbr,
		StateName:  place.State,
		Latitude:   lat,
		Longitude:  lon,
	}
	if st, ok := States[place.StateAbbr]; ok {
		loc.Agency = st.Agency
		if loc.StateName == "" {
			loc.StateName = st.Name
		}
	} else {
		loc.Agency = "State Wildlife Agency"
	}
	return loc, nil
}
