// Package condo provides the condominium record model, its fixed
// spreadsheet schema, and form-input validation.
package condo

import "strconv"

// HeatingMode says whether the building has centralized heating.
type HeatingMode string

const (
	HeatingCentralized HeatingMode = "yes"
	HeatingAutonomous  HeatingMode = "no"
)

// HeatingType is the kind of heating plant installed.
type HeatingType string

const (
	HeatingTypeHeatPump HeatingType = "heat-pump"
	HeatingTypeHybrid   HeatingType = "hybrid"
	HeatingTypeGas      HeatingType = "gas"
	HeatingTypeElectric HeatingType = "electric"
	HeatingTypeNone     HeatingType = "none"
)

// CoolingMode says whether the building has centralized cooling.
type CoolingMode string

const (
	CoolingCentralized CoolingMode = "yes"
	CoolingNone        CoolingMode = "no"
	CoolingToEvaluate  CoolingMode = "to-be-evaluated"
)

// RoofCondition is the assessed state of the roof.
type RoofCondition string

const (
	RoofGood     RoofCondition = "good"
	RoofMediocre RoofCondition = "mediocre"
	RoofToRedo   RoofCondition = "to-redo"
)

// NoImage is the placeholder stored when no photo was uploaded or the
// upload failed. The record is appended either way.
const NoImage = "no image"

// Record is one condominium row. Name and Address are the only required
// fields; everything else carries a documented default.
type Record struct {
	Reporter       string        `json:"reporter,omitempty"`
	Name           string        `json:"name" validate:"required"`
	Address        string        `json:"address" validate:"required"`
	FiscalCode     string        `json:"fiscal_code,omitempty"`
	CentralHeating HeatingMode   `json:"central_heating" validate:"oneof=yes no"`
	HeatingType    HeatingType   `json:"heating_type" validate:"oneof=heat-pump hybrid gas electric none"`
	CentralCooling CoolingMode   `json:"central_cooling" validate:"oneof=yes no to-be-evaluated"`
	RoofCondition  RoofCondition `json:"roof_condition" validate:"oneof=good mediocre to-redo"`
	Units          int           `json:"units" validate:"gte=0"`
	Offices        int           `json:"offices" validate:"gte=0"`
	Shops          int           `json:"shops" validate:"gte=0"`
	Latitude       *float64      `json:"latitude,omitempty"`
	Longitude      *float64      `json:"longitude,omitempty"`
	Image          string        `json:"image,omitempty"`
	Notes          string        `json:"notes,omitempty"`
}

// FromRow rebuilds a record from a header-keyed store row. Unparseable
// numeric cells are left at their zero value; a read never fails on a
// malformed cell.
func FromRow(row map[string]string) *Record {
	r := &Record{
		Reporter:       row[ColReporter],
		Name:           row[ColName],
		Address:        row[ColAddress],
		FiscalCode:     row[ColFiscalCode],
		CentralHeating: HeatingMode(row[ColCentralHeating]),
		HeatingType:    HeatingType(row[ColHeatingType]),
		CentralCooling: CoolingMode(row[ColCentralCooling]),
		RoofCondition:  RoofCondition(row[ColRoofCondition]),
		Image:          row[ColImage],
		Notes:          row[ColNotes],
	}

	r.Units = parseCount(row[ColUnits])
	r.Offices = parseCount(row[ColOffices])
	r.Shops = parseCount(row[ColShops])

	if lat, err := strconv.ParseFloat(row[ColLatitude], 64); err == nil {
		r.Latitude = &lat
	}
	if lng, err := strconv.ParseFloat(row[ColLongitude], 64); err == nil {
		r.Longitude = &lng
	}

	return r
}

func parseCount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
