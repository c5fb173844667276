package geocode

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"googlemaps.github.io/maps"
)

// geocodeServer returns a fake Maps API server serving the given body on
// every request.
func geocodeServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testGeocoder(t *testing.T, srv *httptest.Server) *GoogleGeocoder {
	t.Helper()
	g, err := NewGoogleGeocoder("test-key", maps.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("creating geocoder: %v", err)
	}
	return g
}

func TestGoogleGeocodeSuccess(t *testing.T) {
	srv := geocodeServer(t, http.StatusOK, `{
		"status": "OK",
		"results": [
			{"geometry": {"location": {"lat": 45.0703, "lng": 7.6869}}}
		]
	}`)
	g := testGeocoder(t, srv)

	p, err := g.Geocode(context.Background(), "Via Roma 1, Torino")
	if err != nil {
		t.Fatalf("geocode: %v", err)
	}
	if p.Latitude != 45.0703 || p.Longitude != 7.6869 {
		t.Errorf("point = %v, want 45.0703/7.6869", p)
	}
}

func TestGoogleGeocodeZeroResults(t *testing.T) {
	srv := geocodeServer(t, http.StatusOK, `{"status": "ZERO_RESULTS", "results": []}`)
	g := testGeocoder(t, srv)

	_, err := g.Geocode(context.Background(), "Via Inesistente 0")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("geocode = %v, want ErrNotFound", err)
	}
}

func TestGoogleGeocodeProviderError(t *testing.T) {
	srv := geocodeServer(t, http.StatusInternalServerError, `boom`)
	g := testGeocoder(t, srv)

	_, err := g.Geocode(context.Background(), "Via Roma 1")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("geocode = %v, want ErrNotFound for provider failure", err)
	}
}

func TestNewGoogleGeocoderRequiresKey(t *testing.T) {
	if _, err := NewGoogleGeocoder(""); err == nil {
		t.Fatal("expected error for empty API key")
	}
}
