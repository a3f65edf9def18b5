// Package cmd - CLI command: archcost pricing update
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"archcost/db/ingestion"
	"archcost/internal/config"
)

var pricingUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch fresh prices and commit a new snapshot",
	Long: `Manually run the price refresh pipeline.

This command:
  1. Fetches compute prices and currency rates from the upstream feeds
  2. Falls back to baseline values for any source that fails
  3. Archives the previous snapshot (two most recent copies are kept)
  4. Commits the new snapshot as latest.json

The server picks up committed snapshots on its next start; a running server
refreshes on its own schedule or via POST /admin/refresh-prices.`,
	RunE: runPricingUpdate,
}

var updateTimeout time.Duration

func init() {
	pricingCmd.AddCommand(pricingUpdateCmd)
	pricingUpdateCmd.Flags().DurationVar(&updateTimeout, "timeout", 5*time.Minute, "timeout for the refresh run")
}

func runPricingUpdate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), updateTimeout)
	defer cancel()

	service, store, err := openPricing(config.Get())
	if err != nil {
		return err
	}

	pipeline := ingestion.NewPipeline(ingestion.NewFetcher(), service, store)
	if err := pipeline.Run(ctx); err != nil {
		return err
	}

	status := pipeline.Status()
	fmt.Println("Refresh completed")
	fmt.Printf("  Sources fetched:    %d\n", status.SourcesFetched)
	fmt.Printf("  Currencies updated: %d\n", status.CurrenciesUpdated)
	fmt.Printf("  Compute items:      %d\n", status.ComputeItems)
	fmt.Printf("  Duration:           %.1fs\n", status.DurationSeconds)
	return nil
}
