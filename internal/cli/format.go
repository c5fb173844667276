package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/evcraddock/condo-registry/internal/condo"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printRecordSummary prints a single record in text format.
func printRecordSummary(r *condo.Record) {
	fmt.Printf("  Building: %s\n", r.Name)
	fmt.Printf("  Address:  %s\n", r.Address)
	if r.Reporter != "" {
		fmt.Printf("  Reporter: %s\n", r.Reporter)
	}
	if r.FiscalCode != "" {
		fmt.Printf("  Fiscal:   %s\n", r.FiscalCode)
	}
	fmt.Printf("  Heating:  %s (%s)\n", r.CentralHeating, r.HeatingType)
	fmt.Printf("  Cooling:  %s\n", r.CentralCooling)
	fmt.Printf("  Roof:     %s\n", r.RoofCondition)
	fmt.Printf("  Counts:   %d units, %d offices, %d shops\n", r.Units, r.Offices, r.Shops)
	if r.Latitude != nil && r.Longitude != nil {
		fmt.Printf("  Location: %.6f, %.6f\n", *r.Latitude, *r.Longitude)
	}
	if r.Image != "" && r.Image != condo.NoImage {
		fmt.Printf("  Photo:    %s\n", r.Image)
	}
	if r.Notes != "" {
		fmt.Printf("  Notes:    %s\n", r.Notes)
	}
}

// printRecordTable prints records as a formatted table.
func printRecordTable(records []*condo.Record) error {
	if len(records) == 0 {
		fmt.Println("No buildings recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "BUILDING\tADDRESS\tUNITS\tHEATING\tROOF\tCOORDS"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--------\t-------\t-----\t-------\t----\t------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, r := range records {
		coords := "-"
		if r.Latitude != nil && r.Longitude != nil {
			coords = fmt.Sprintf("%.4f,%.4f", *r.Latitude, *r.Longitude)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%s/%s\t%s\t%s\n",
			truncate(r.Name, 24), truncate(r.Address, 40),
			r.Units, r.CentralHeating, r.HeatingType,
			r.RoofCondition, coords); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d buildings\n", len(records))
	return nil
}

// truncate shortens s to max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// underscored converts a dashed flag name to its form field name.
func underscored(flag string) string {
	out := []rune(flag)
	for i, r := range out {
		if r == '-' {
			out[i] = '_'
		}
	}
	return string(out)
}
