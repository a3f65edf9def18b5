// Package estimate - Optimization suggestions
package estimate

import (
	"archcost/core/pricing"
	"archcost/core/types"
)

// Suggestion trigger thresholds, in USD per month
const (
	reservedInstanceThreshold = 50.0
	storageLifecycleThreshold = 20.0
)

// suggestions builds the list of triggered savings recommendations.
// Thresholds are evaluated against the USD component costs; the quoted
// savings are converted to the display currency.
func suggestions(t *pricing.Table, arch types.Architecture, computeUSD, storageUSD float64, currency string) []types.Suggestion {
	out := []types.Suggestion{}

	if computeUSD > reservedInstanceThreshold {
		saving := t.Convert(computeUSD*0.40, currency)
		out = append(out, types.Suggestion{
			Title:       "Reserved Instances (1-Year)",
			Saving:      grouped.Sprintf("%s%.0f/mo", t.Symbol(currency), saving),
			Description: "Commit to 1-year usage for consistent workloads to save ~40% on compute.",
		})
	}

	if arch == types.ArchMicroservices || arch == types.ArchHybrid {
		// 70% discount on the ~30% of the fleet that is stateless
		saving := t.Convert(computeUSD*0.70*0.3, currency)
		out = append(out, types.Suggestion{
			Title:       "Spot Instances",
			Saving:      grouped.Sprintf("%s%.0f/mo", t.Symbol(currency), saving),
			Description: "Use Spot instances for stateless microservices to save up to 70%.",
		})
	}

	if storageUSD > storageLifecycleThreshold {
		saving := t.Convert(storageUSD*0.30, currency)
		out = append(out, types.Suggestion{
			Title:       "S3 Lifecycle Policies",
			Saving:      grouped.Sprintf("%s%.0f/mo", t.Symbol(currency), saving),
			Description: "Move infrequently accessed data to Glacier/Cold storage.",
		})
	}

	return out
}
