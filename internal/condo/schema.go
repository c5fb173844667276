package condo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Column headers as they appear in the spreadsheet. The append order is a
// versioned contract: changing it breaks every row already persisted.
const (
	ColReporter       = "Reporter"
	ColName           = "Building Name"
	ColAddress        = "Address"
	ColFiscalCode     = "Fiscal Code"
	ColCentralHeating = "Central Heating"
	ColHeatingType    = "Heating Type"
	ColCentralCooling = "Central Cooling"
	ColRoofCondition  = "Roof Condition"
	ColUnits          = "Units"
	ColOffices        = "Offices"
	ColShops          = "Shops"
	ColLatitude       = "Latitude"
	ColLongitude      = "Longitude"
	ColImage          = "Image"
	ColNotes          = "Notes"
)

var columnOrder = []string{
	ColReporter, ColName, ColAddress, ColFiscalCode,
	ColCentralHeating, ColHeatingType, ColCentralCooling, ColRoofCondition,
	ColUnits, ColOffices, ColShops,
	ColLatitude, ColLongitude, ColImage, ColNotes,
}

// ColumnOrder returns the fixed order in which record fields are appended
// to the store. Callers must not mutate the returned slice.
func ColumnOrder() []string {
	return columnOrder
}

// ValidationError reports a single rejected field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// structField maps Record struct field names to their column headers so a
// validator failure can be reported against the name the user saw.
var structField = map[string]string{
	"Name":           ColName,
	"Address":        ColAddress,
	"CentralHeating": ColCentralHeating,
	"HeatingType":    ColHeatingType,
	"CentralCooling": ColCentralCooling,
	"RoofCondition":  ColRoofCondition,
	"Units":          ColUnits,
	"Offices":        ColOffices,
	"Shops":          ColShops,
}

// Validate builds a Record from raw form fields, applying defaults for
// everything optional, and rejects it with a *ValidationError naming the
// offending field when a required value is blank or a count is negative.
// Keys follow the form field names: reporter, name, address, fiscal_code,
// central_heating, heating_type, central_cooling, roof_condition, units,
// offices, shops, image, notes.
func Validate(fields map[string]string) (*Record, error) {
	r := &Record{
		Reporter:       strings.TrimSpace(fields["reporter"]),
		Name:           strings.TrimSpace(fields["name"]),
		Address:        strings.TrimSpace(fields["address"]),
		FiscalCode:     strings.TrimSpace(fields["fiscal_code"]),
		CentralHeating: HeatingCentralized,
		HeatingType:    HeatingTypeHeatPump,
		CentralCooling: CoolingCentralized,
		RoofCondition:  RoofGood,
		Image:          NoImage,
		Notes:          strings.TrimSpace(fields["notes"]),
	}

	if v := fields["central_heating"]; v != "" {
		r.CentralHeating = HeatingMode(v)
	}
	if v := fields["heating_type"]; v != "" {
		r.HeatingType = HeatingType(v)
	}
	if v := fields["central_cooling"]; v != "" {
		r.CentralCooling = CoolingMode(v)
	}
	if v := fields["roof_condition"]; v != "" {
		r.RoofCondition = RoofCondition(v)
	}
	if v := fields["image"]; v != "" {
		r.Image = v
	}

	var err error
	if r.Units, err = parseCountField(fields, "units", ColUnits); err != nil {
		return nil, err
	}
	if r.Offices, err = parseCountField(fields, "offices", ColOffices); err != nil {
		return nil, err
	}
	if r.Shops, err = parseCountField(fields, "shops", ColShops); err != nil {
		return nil, err
	}

	if err := validate.Struct(r); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok || len(verrs) == 0 {
			return nil, fmt.Errorf("validating record: %w", err)
		}
		fe := verrs[0]
		field := structField[fe.StructField()]
		if field == "" {
			field = fe.StructField()
		}
		reason := "required"
		switch fe.Tag() {
		case "gte":
			reason = "must not be negative"
		case "oneof":
			reason = fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
		}
		return nil, &ValidationError{Field: field, Reason: reason}
	}

	return r, nil
}

// parseCountField parses an optional non-negative integer form field.
// Blank means the documented default of 0.
func parseCountField(fields map[string]string, key, col string) (int, error) {
	v := strings.TrimSpace(fields[key])
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &ValidationError{Field: col, Reason: "must be a whole number"}
	}
	return n, nil
}

// Row serializes the record into the fixed column order for appending.
// Nil coordinates become blank cells.
func (r *Record) Row() []interface{} {
	lat, lng := "", ""
	if r.Latitude != nil {
		lat = strconv.FormatFloat(*r.Latitude, 'f', 6, 64)
	}
	if r.Longitude != nil {
		lng = strconv.FormatFloat(*r.Longitude, 'f', 6, 64)
	}

	return []interface{}{
		r.Reporter, r.Name, r.Address, r.FiscalCode,
		string(r.CentralHeating), string(r.HeatingType),
		string(r.CentralCooling), string(r.RoofCondition),
		r.Units, r.Offices, r.Shops,
		lat, lng, r.Image, r.Notes,
	}
}
