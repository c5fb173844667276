package view

import (
	"context"
	"testing"

	"github.com/evcraddock/condo-registry/internal/condo"
	"github.com/evcraddock/condo-registry/internal/geocode"
	"github.com/evcraddock/condo-registry/internal/sheet"
)

// scriptedResolver resolves only the addresses it knows.
type scriptedResolver struct {
	calls  int
	points map[string]geocode.Point
}

func (s *scriptedResolver) Resolve(ctx context.Context, address string) (geocode.Point, error) {
	s.calls++
	p, ok := s.points[address]
	if !ok {
		return geocode.Point{}, geocode.ErrNotFound
	}
	return p, nil
}

func collect(points func(func(MapPoint) bool)) []MapPoint {
	var out []MapPoint
	for p := range points {
		out = append(out, p)
	}
	return out
}

func TestMapPointsPartialFailureIsolation(t *testing.T) {
	resolver := &scriptedResolver{points: map[string]geocode.Point{
		"Via Roma 1":      {Latitude: 45.07, Longitude: 7.68},
		"Via Garibaldi 3": {Latitude: 45.08, Longitude: 7.67},
	}}
	a := NewAssembler(resolver)

	rows := []sheet.Row{
		{condo.ColName: "Condo A", condo.ColAddress: "Via Roma 1"},
		{condo.ColName: "Condo B", condo.ColAddress: "Via Inesistente 0"},
		{condo.ColName: "Condo C", condo.ColAddress: "Via Garibaldi 3"},
	}

	points := collect(a.MapPoints(context.Background(), rows))
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].Name != "Condo A" || points[1].Name != "Condo C" {
		t.Errorf("points = %v/%v, want Condo A/Condo C", points[0].Name, points[1].Name)
	}
}

func TestMapPointsPrefersStoredCoordinates(t *testing.T) {
	resolver := &scriptedResolver{}
	a := NewAssembler(resolver)

	rows := []sheet.Row{
		{
			condo.ColName:      "Condo A",
			condo.ColAddress:   "Via Roma 1",
			condo.ColLatitude:  "45.0703",
			condo.ColLongitude: "7.6869",
		},
	}

	points := collect(a.MapPoints(context.Background(), rows))
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1", len(points))
	}
	if resolver.calls != 0 {
		t.Errorf("resolver called %d times, want 0 for stored coordinates", resolver.calls)
	}
	if points[0].Point.Latitude != 45.0703 {
		t.Errorf("latitude = %v, want 45.0703", points[0].Point.Latitude)
	}
}

func TestMapPointsRestartable(t *testing.T) {
	resolver := &scriptedResolver{}
	a := NewAssembler(resolver)

	rows := []sheet.Row{
		{condo.ColName: "Condo A", condo.ColAddress: "Via Roma 1"},
	}
	seq := a.MapPoints(context.Background(), rows)

	if got := collect(seq); len(got) != 0 {
		t.Fatalf("first pass: got %d points, want 0", len(got))
	}

	// The address becomes resolvable before the second pass.
	resolver.points = map[string]geocode.Point{
		"Via Roma 1": {Latitude: 45.07, Longitude: 7.68},
	}

	if got := collect(seq); len(got) != 1 {
		t.Fatalf("second pass: got %d points, want 1", len(got))
	}
}

func TestMapPointsEarlyBreak(t *testing.T) {
	resolver := &scriptedResolver{points: map[string]geocode.Point{
		"Via Roma 1": {Latitude: 1, Longitude: 1},
		"Via Po 2":   {Latitude: 2, Longitude: 2},
	}}
	a := NewAssembler(resolver)

	rows := []sheet.Row{
		{condo.ColName: "Condo A", condo.ColAddress: "Via Roma 1"},
		{condo.ColName: "Condo B", condo.ColAddress: "Via Po 2"},
	}

	for range a.MapPoints(context.Background(), rows) {
		break
	}
	if resolver.calls != 1 {
		t.Errorf("resolver called %d times, want 1 after early break", resolver.calls)
	}
}

func TestRecords(t *testing.T) {
	rows := []sheet.Row{
		{condo.ColName: "Condo A", condo.ColAddress: "Via Roma 1", condo.ColUnits: "10"},
		{condo.ColName: "Condo B", condo.ColAddress: "Via Po 2"},
	}

	records := Records(rows)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Units != 10 {
		t.Errorf("units = %d, want 10", records[0].Units)
	}
}
