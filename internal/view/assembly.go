// Package view projects store rows into table-ready records and map-ready
// points. Nothing here is persisted.
package view

import (
	"context"
	"iter"
	"strconv"

	"github.com/evcraddock/condo-registry/internal/condo"
	"github.com/evcraddock/condo-registry/internal/geocode"
	"github.com/evcraddock/condo-registry/internal/sheet"
)

// MapPoint is one marker for the map: a building, its address, and its
// resolved coordinates.
type MapPoint struct {
	Name    string        `json:"name"`
	Address string        `json:"address"`
	Point   geocode.Point `json:"point"`
}

// Resolver is the address-to-coordinates dependency.
type Resolver interface {
	Resolve(ctx context.Context, address string) (geocode.Point, error)
}

// Assembler builds view projections from store rows.
type Assembler struct {
	resolver Resolver
}

// NewAssembler creates an assembler around the given resolver.
func NewAssembler(r Resolver) *Assembler {
	return &Assembler{resolver: r}
}

// Records rebuilds typed records from store rows for the table view. Every
// row appears, resolvable address or not.
func Records(rows []sheet.Row) []*condo.Record {
	records := make([]*condo.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, condo.FromRow(row))
	}
	return records
}

// MapPoints returns a lazy sequence of markers. Rows with coordinates
// already stored use them directly; otherwise the address is resolved.
// A row that cannot be placed is skipped, never aborting the rest.
// The sequence restarts on every range, so a second pass after the
// geocoding cache warms up may yield more points.
func (a *Assembler) MapPoints(ctx context.Context, rows []sheet.Row) iter.Seq[MapPoint] {
	return func(yield func(MapPoint) bool) {
		for _, row := range rows {
			p, ok := placeRow(ctx, a.resolver, row)
			if !ok {
				continue
			}
			if !yield(MapPoint{
				Name:    row[condo.ColName],
				Address: row[condo.ColAddress],
				Point:   p,
			}) {
				return
			}
		}
	}
}

// placeRow finds coordinates for a row, preferring cells persisted at
// submission time over a fresh resolution.
func placeRow(ctx context.Context, r Resolver, row sheet.Row) (geocode.Point, bool) {
	lat, latErr := strconv.ParseFloat(row[condo.ColLatitude], 64)
	lng, lngErr := strconv.ParseFloat(row[condo.ColLongitude], 64)
	if latErr == nil && lngErr == nil {
		return geocode.Point{Latitude: lat, Longitude: lng}, true
	}

	p, err := r.Resolve(ctx, row[condo.ColAddress])
	if err != nil {
		return geocode.Point{}, false
	}
	return p, true
}
