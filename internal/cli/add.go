package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/condo-registry/internal/condo"
)

func newAddCmd() *cobra.Command {
	fields := map[string]*string{}
	flag := func(cmd *cobra.Command, name, usage string) {
		var v string
		cmd.Flags().StringVar(&v, name, "", usage)
		fields[name] = &v
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a building",
		Long:  "Validate a building record, geocode its address, and append it to the shared spreadsheet.",
		Args:  cobra.NoArgs,
	}

	flag(cmd, "reporter", "who is reporting the building")
	flag(cmd, "name", "building name (required)")
	flag(cmd, "address", "street address (required)")
	flag(cmd, "fiscal-code", "building fiscal code")
	flag(cmd, "central-heating", "centralized heating (yes|no)")
	flag(cmd, "heating-type", "heating type (heat-pump|hybrid|gas|electric|none)")
	flag(cmd, "central-cooling", "centralized cooling (yes|no|to-be-evaluated)")
	flag(cmd, "roof-condition", "roof condition (good|mediocre|to-redo)")
	flag(cmd, "units", "number of residential units")
	flag(cmd, "offices", "number of offices")
	flag(cmd, "shops", "number of shops")
	flag(cmd, "notes", "free-form notes")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runAdd(cmd, fields)
	}

	return cmd
}

func runAdd(cmd *cobra.Command, flags map[string]*string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fields := map[string]string{}
	for name, v := range flags {
		// Flag names use dashes, form field names use underscores.
		fields[underscored(name)] = *v
	}

	rec, err := condo.Validate(fields)
	if err != nil {
		return err
	}

	// Geocode best effort: a miss stores the record without coordinates.
	if cfg.MapsAPIKey != "" {
		resolver, err := newResolver(cfg)
		if err != nil {
			return err
		}
		if p, err := resolver.Resolve(cmd.Context(), rec.Address); err == nil {
			rec.Latitude = &p.Latitude
			rec.Longitude = &p.Longitude
		} else if !isJSON() {
			fmt.Printf("Could not geocode %q, storing without coordinates\n", rec.Address)
		}
	}

	store, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if err := store.Append(cmd.Context(), rec); err != nil {
		return fmt.Errorf("the record may or may not have been saved, check before retrying: %w", err)
	}

	if isJSON() {
		return printJSON(rec)
	}

	fmt.Println("Building recorded.")
	printRecordSummary(rec)
	return nil
}
