// Package cmd - CLI command: archcost pricing restore
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"archcost/internal/config"
)

var pricingRestoreCmd = &cobra.Command{
	Use:   "restore <history-file>",
	Short: "Restore an archived pricing snapshot",
	Long: `Re-commit an archived snapshot as the new latest.

The file name must be one of the history entries listed by
"archcost pricing status". The current latest is archived in turn, so a
restore can itself be undone. The archive entry is left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runPricingRestore,
}

func init() {
	pricingCmd.AddCommand(pricingRestoreCmd)
}

func runPricingRestore(cmd *cobra.Command, args []string) error {
	_, store, err := openPricing(config.Get())
	if err != nil {
		return err
	}

	snap, err := store.Restore(args[0])
	if err != nil {
		return err
	}
	if err := store.Commit(snap); err != nil {
		return err
	}

	fmt.Printf("Restored %s as the latest snapshot\n", args[0])
	return nil
}
