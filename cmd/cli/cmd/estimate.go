// Package cmd - estimate command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"archcost/adapters/workload"
	"archcost/core/estimate"
	"archcost/core/output"
	"archcost/core/pricing"
	"archcost/internal/config"
	"archcost/internal/logging"
)

var (
	workloadFile string
	outputFormat string
	currency     string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate costs for a workload definition",
	Long: `Estimate monthly infrastructure costs from a workload definition file.

The workload file describes the architecture, expected traffic and the
optional feature blocks in HCL.

Examples:
  archcost estimate -f workload.hcl
  archcost estimate -f workload.hcl --currency INR
  archcost estimate -f workload.hcl --format json`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&workloadFile, "file", "f", "", "workload definition file")
	estimateCmd.Flags().StringVar(&outputFormat, "format", "text", "output format (text, json)")
	estimateCmd.Flags().StringVarP(&currency, "currency", "c", "", "display currency (overrides the workload file)")
	estimateCmd.MarkFlagRequired("file")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(workloadFile); os.IsNotExist(err) {
		return fmt.Errorf("workload file does not exist: %s", workloadFile)
	}

	def, err := workload.Load(workloadFile)
	if err != nil {
		return err
	}
	if currency != "" {
		def.Currency = currency
	}

	service, err := loadPricing()
	if err != nil {
		return err
	}
	table := service.Current()

	result := estimate.Estimate(table, def.Architecture, def.Traffic, def.Currency)
	return output.Render(os.Stdout, result, output.Format(outputFormat), table.Symbol(result.Currency))
}

// loadPricing builds the price table from the compiled-in defaults overlaid
// with the most recent archived snapshot, when one exists.
func loadPricing() (*pricing.Service, error) {
	service, store, err := openPricing(config.Get())
	if err != nil {
		return nil, err
	}

	snap, err := store.Latest()
	if err != nil {
		logging.Warn("ignoring unreadable pricing snapshot", zap.Error(err))
		return service, nil
	}
	if snap != nil {
		service.Apply(snap)
	}
	return service, nil
}
