// Package estimate - Multi-region costs
package estimate

import (
	"fmt"

	"archcost/core/pricing"
	"archcost/core/types"
)

// activeActiveOverhead is the orchestration overhead multiplier for
// active-active replication, applied to the whole multi-region cost after
// cross-region transfer has been added.
const activeActiveOverhead = 1.3

// multiRegionCost prices additional regions against the base infrastructure
// total (everything priced before this block).
func multiRegionCost(t *pricing.Table, cfg types.MultiRegionConfig, baseInfraCost float64, reqs map[string]string) float64 {
	if !cfg.Enabled || cfg.Regions <= 1 {
		return 0.0
	}

	additionalRegions := cfg.Regions - 1
	cost := baseInfraCost * t.Price("replication", "region_multiplier") * float64(additionalRegions)
	reqs["Regions"] = fmt.Sprintf("%d regions (%s)", cfg.Regions, cfg.ReplicationType)

	if cfg.CrossRegionTransferGB > 0 {
		cost += cfg.CrossRegionTransferGB * t.Price("replication", "cross_region_gb")
		reqs["Cross-Region Transfer"] = fmt.Sprintf("%g GB/mo", cfg.CrossRegionTransferGB)
	}

	if cfg.ReplicationType == "active_active" {
		cost *= activeActiveOverhead
		reqs["HA Setup"] = "Active-Active"
	}

	return cost
}
