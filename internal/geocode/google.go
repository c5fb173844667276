package geocode

import (
	"context"
	"fmt"
	"log/slog"

	"googlemaps.github.io/maps"
)

// GoogleGeocoder resolves addresses through the Google Maps Geocoding API.
type GoogleGeocoder struct {
	client *maps.Client
}

// NewGoogleGeocoder creates a geocoder with the given API key. Extra
// options are for tests, which point the client at a fake server.
func NewGoogleGeocoder(apiKey string, opts ...maps.ClientOption) (*GoogleGeocoder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("maps API key is required")
	}

	opts = append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating maps client: %w", err)
	}

	return &GoogleGeocoder{client: client}, nil
}

// Geocode looks up one address. Provider errors and empty result sets both
// collapse to ErrNotFound; the underlying error is only logged.
func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (Point, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		slog.Warn("geocoding lookup failed", "address", address, "error", err)
		return Point{}, ErrNotFound
	}
	if len(results) == 0 {
		return Point{}, ErrNotFound
	}

	loc := results[0].Geometry.Location
	return Point{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}
