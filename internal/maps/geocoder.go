package maps

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"googlemaps.github.io/maps"
)

// Location is a resolved place: coordinates plus a canonical display label.
type Location struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Label string  `json:"label"`
}

// Geocoder resolves a free-text location string to coordinates and a label.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (Location, error)
}

var zipQueryRe = regexp.MustCompile(`^\d{5}$`)

// GeocodingService handles interactions with the Google Geocoding API.
type GeocodingService struct {
	client *maps.Client
}

// NewGeocodingService creates a new GeocodingService with the given API key.
func NewGeocodingService(apiKey string) (*GeocodingService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodingService{client: client}, nil
}

// Geocode resolves a postal code or city/region string. Bare 5-digit ZIP
// codes are biased to the US so "30344" doesn't land in another country's
// postal grid.
func (s *GeocodingService) Geocode(ctx context.Context, query string) (Location, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Location{}, fmt.Errorf("empty geocode query")
	}

	r := &maps.GeocodingRequest{Address: query}
	if zipQueryRe.MatchString(query) {
		r.Components = map[maps.Component]string{maps.ComponentCountry: "US"}
	}

	results, err := s.client.Geocode(ctx, r)
	if err != nil {
		return Location{}, fmt.Errorf("geocoding api error: %w", err)
	}
	if len(results) == 0 {
		return Location{}, fmt.Errorf("no geocoding result for %q", query)
	}

	best := results[0]
	return Location{
		Lat:   best.Geometry.Location.Lat,
		Lng:   best.Geometry.Location.Lng,
		Label: best.FormattedAddress,
	}, nil
}
