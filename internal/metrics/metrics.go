// Package metrics exposes prometheus counters for store and geocoding
// operations, served on /metrics by the web server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RecordAppends = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "condo_record_appends_total",
			Help: "Total number of record append attempts.",
		},
		[]string{"status"},
	)
	GeocodeLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "condo_geocode_lookups_total",
			Help: "Total number of address resolutions by outcome.",
		},
		[]string{"result"},
	)
	PhotoUploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "condo_photo_uploads_total",
			Help: "Total number of photo uploads.",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(RecordAppends, GeocodeLookups, PhotoUploads)
}

// Handler returns the HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
