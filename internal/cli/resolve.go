package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <address>",
		Short: "Geocode an address",
		Long:  "Resolve a free-text address to coordinates through the geocoding provider.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runResolve,
	}
}

func runResolve(cmd *cobra.Command, args []string) error {
	address := strings.Join(args, " ")

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	resolver, err := newResolver(cfg)
	if err != nil {
		return err
	}

	p, err := resolver.Resolve(cmd.Context(), address)
	if err != nil {
		return fmt.Errorf("resolving %q: %w", address, err)
	}

	if isJSON() {
		return printJSON(p)
	}

	fmt.Printf("%s\n  Latitude:  %.6f\n  Longitude: %.6f\n", address, p.Latitude, p.Longitude)
	return nil
}
