package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/condo-registry/internal/logging"
	"github.com/evcraddock/condo-registry/internal/storage"
	"github.com/evcraddock/condo-registry/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web UI",
		Long:  "Start the HTTP server with the registry table, the map, and the submission form.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (default: config value or 8080)")

	return cmd
}

func runServe(cmd *cobra.Command, port int) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logging.Setup(cfg.Dev)

	store, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	resolver, err := newResolver(cfg)
	if err != nil {
		return err
	}

	// Photo upload is optional; without it records keep the placeholder.
	var uploader web.Uploader
	if cfg.UploadEnabled() {
		up, err := storage.New(cfg.AWSRegion, cfg.S3Bucket, cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey)
		if err != nil {
			return fmt.Errorf("creating uploader: %w", err)
		}
		uploader = up
	}

	srv, err := web.NewServer(store, resolver, uploader)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	if port == 0 {
		port = cfg.Port
	}
	return srv.ListenAndServe(port)
}
