// Package geocode resolves free-text addresses to coordinates through an
// external provider, with a process-wide positive-result cache.
package geocode

import (
	"context"
	"errors"
)

// ErrInvalidInput is returned for an empty or whitespace-only address,
// before any provider call is made.
var ErrInvalidInput = errors.New("address is empty")

// ErrNotFound means the provider returned no result for the address.
// It is a normal outcome, not a failure: the caller degrades the view.
var ErrNotFound = errors.New("address not found")

// Point is a resolved coordinate pair.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocoder looks up a single address against a provider. Implementations
// return ErrNotFound for both provider failures and zero-result lookups;
// raw provider errors never escape.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Point, error)
}
