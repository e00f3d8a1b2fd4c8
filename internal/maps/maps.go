// README: Google Maps collaborator boundary (geocoding + maps links).
package maps

import (
	"context"
	"fmt"
	"net/url"

	"googlemaps.github.io/maps"
)

// Point is a geographic coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Service wraps the Google Maps API. Geocoding is optional: with an
// empty API key the service still builds search links but Geocode
// reports ErrNoClient, which callers treat as a soft failure.
type Service struct {
	client *maps.Client
}

var ErrNoClient = fmt.Errorf("maps client not configured")

// NewService creates a Service. An empty apiKey yields a link-only service.
func NewService(apiKey string) (*Service, error) {
	if apiKey == "" {
		return &Service{}, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Service{client: client}, nil
}

// Geocode resolves a free-form location string to coordinates.
func (s *Service) Geocode(ctx context.Context, location string) (Point, error) {
	if s.client == nil {
		return Point{}, ErrNoClient
	}
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: location})
	if err != nil {
		return Point{}, fmt.Errorf("geocode error: %w", err)
	}
	if len(results) == 0 {
		return Point{}, fmt.Errorf("no geocode results for %q", location)
	}
	loc := results[0].Geometry.Location
	return Point{Lat: loc.Lat, Lng: loc.Lng}, nil
}

// Link builds a Google Maps search URL for a named place within a city.
// Pure string construction; works without an API key.
func (s *Service) Link(name, city, country string) string {
	q := name
	if city != "" {
		q += ", " + city
	}
	if country != "" {
		q += ", " + country
	}
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(q)
}
