package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/condo-registry/internal/view"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every recorded building",
		Long:  "Read all records from the shared spreadsheet and print them as a table or JSON.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	rows, err := store.ReadAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing buildings: %w", err)
	}

	records := view.Records(rows)
	if isJSON() {
		return printJSON(records)
	}
	return printRecordTable(records)
}
