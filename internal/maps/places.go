package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// Venue represents a simplified nearby-search result.
type Venue struct {
	Name       string
	Address    string
	Lat        float64
	Lng        float64
	Categories []string
}

// Searcher returns commercial venues near a coordinate matching a keyword.
type Searcher interface {
	Nearby(ctx context.Context, loc Location, radiusMeters int, keyword string) ([]Venue, error)
}

// PlacesService handles interactions with the Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// Nearby searches for venues around loc within radiusMeters. Results keep the
// raw category tags so the caller can apply its own filtering policy.
func (s *PlacesService) Nearby(ctx context.Context, loc Location, radiusMeters int, keyword string) ([]Venue, error) {
	r := &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: loc.Lat, Lng: loc.Lng},
		Radius:   uint(radiusMeters),
		Keyword:  keyword,
	}

	resp, err := s.client.NearbySearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	venues := make([]Venue, 0, len(resp.Results))
	for _, result := range resp.Results {
		venues = append(venues, Venue{
			Name:       result.Name,
			Address:    result.Vicinity,
			Lat:        result.Geometry.Location.Lat,
			Lng:        result.Geometry.Location.Lng,
			Categories: result.Types,
		})
	}
	return venues, nil
}
