// Package cli defines the cobra command tree for condo-registry.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/api/option"

	"github.com/evcraddock/condo-registry/internal/config"
	"github.com/evcraddock/condo-registry/internal/geocode"
	"github.com/evcraddock/condo-registry/internal/sheet"
)

var (
	flagFormat string
	flagConfig string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cr",
		Short:         "Record and map condominium buildings",
		Long:          "A tool to record condominium buildings in a shared spreadsheet, geocode their addresses, and browse them via CLI or web UI.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path (default: ~/.config/cr/config.yaml)")

	root.AddCommand(
		newAddCmd(),
		newListCmd(),
		newResolveCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}

// loadConfig reads the config file named by --config or the default path.
func loadConfig() (config.Config, error) {
	path := flagConfig
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
	}
	return config.Load(path)
}

// openStore builds the record store from config.
func openStore(ctx context.Context, cfg config.Config) (*sheet.Store, error) {
	if err := cfg.ValidateStore(); err != nil {
		return nil, err
	}

	var opts []option.ClientOption
	if cfg.GoogleCredentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GoogleCredentials))
	}

	store, err := sheet.New(ctx, cfg.SpreadsheetID, cfg.SheetName, opts...)
	if err != nil {
		return nil, fmt.Errorf("opening record store: %w", err)
	}
	return store, nil
}

// newResolver builds the geocoding resolver from config.
func newResolver(cfg config.Config) (*geocode.Resolver, error) {
	g, err := geocode.NewGoogleGeocoder(cfg.MapsAPIKey)
	if err != nil {
		return nil, fmt.Errorf("creating geocoder: %w", err)
	}
	return geocode.NewResolver(g), nil
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}
