// Package cmd - Pricing data management commands
package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"archcost/core/pricing"
	"archcost/internal/config"
)

var pricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Pricing data management commands",
	Long:  "Commands for inspecting, updating and restoring pricing snapshots.",
}

var pricingStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show active price table status and snapshot archive",
	RunE:  runPricingStatus,
}

var pricingShowCmd = &cobra.Command{
	Use:   "show [category]",
	Short: "Show price table contents",
	Long: `Show the active price table. With no argument, lists the categories;
with a category name, lists its item prices in USD.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPricingShow,
}

func init() {
	rootCmd.AddCommand(pricingCmd)
	pricingCmd.AddCommand(pricingStatusCmd)
	pricingCmd.AddCommand(pricingShowCmd)
}

// openPricing creates the pricing service and snapshot store from the active
// configuration. The service starts on the compiled-in defaults.
func openPricing(cfg *config.Config) (*pricing.Service, *pricing.Store, error) {
	store, err := pricing.NewStore(cfg.Pricing.DataDir)
	if err != nil {
		return nil, nil, err
	}
	return pricing.NewService(), store, nil
}

func runPricingStatus(cmd *cobra.Command, args []string) error {
	service, store, err := openPricing(config.Get())
	if err != nil {
		return err
	}

	snap, err := store.Latest()
	if err != nil {
		return err
	}
	if snap != nil {
		service.Apply(snap)
	}

	meta := service.Current().Meta()
	fmt.Println("Price table")
	fmt.Println("-----------")
	if meta.UpdatedAt.IsZero() {
		fmt.Println("  Source:       compiled-in defaults")
	} else {
		fmt.Printf("  Last updated: %s\n", meta.UpdatedAt.Format(time.RFC3339))
		fmt.Printf("  Sources:      %v\n", meta.Sources)
	}

	history, err := store.History()
	if err != nil {
		return err
	}
	fmt.Println("")
	fmt.Println("Snapshot archive")
	fmt.Println("----------------")
	if len(history) == 0 {
		fmt.Println("  (empty)")
		return nil
	}
	for _, entry := range history {
		fmt.Printf("  %s  archived %s\n", entry.File, entry.ArchivedAt.Format(time.RFC3339))
	}
	return nil
}

func runPricingShow(cmd *cobra.Command, args []string) error {
	service, err := loadPricing()
	if err != nil {
		return err
	}
	table := service.Current()

	if len(args) == 0 {
		for _, category := range pricing.Categories {
			fmt.Printf("%-12s %d items\n", category, len(table.Category(category)))
		}
		return nil
	}

	items := table.Category(args[0])
	if items == nil {
		return fmt.Errorf("unknown category: %s", args[0])
	}

	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-32s $%.4f\n", name, items[name])
	}
	return nil
}
