// Package estimate - Projections, multi-cloud comparison, scaling scenarios
package estimate

import (
	"math"

	"archcost/core/pricing"
)

// scalingExponent models economies of scale: cost grows sub-linearly in users
const scalingExponent = 0.9

// scalingTargets are the fixed what-if user counts
var scalingTargets = []struct {
	label string
	users int
}{
	{"10k Users", 10_000},
	{"100k Users", 100_000},
	{"1M Users", 1_000_000},
}

// threeYearProjection compounds the yearly cost by the growth rate.
// Year 1 is the current yearly cost; growth applies from year 2.
func threeYearProjection(yearlyCost, growthRate float64) map[string]float64 {
	return map[string]float64{
		"Year 1": yearlyCost,
		"Year 2": yearlyCost * (1 + growthRate),
		"Year 3": yearlyCost * math.Pow(1+growthRate, 2),
	}
}

// multiCloudCosts projects the USD grand total onto every configured
// provider multiplier, then converts to the display currency.
func multiCloudCosts(t *pricing.Table, totalUSD float64, currency string) map[string]float64 {
	out := make(map[string]float64)
	for provider, multiplier := range t.CloudMultipliers() {
		out[provider] = t.Convert(totalUSD*multiplier, currency)
	}
	return out
}

// scalingScenarios projects the USD grand total to the fixed target user
// counts with sub-linear scaling. A zero base DAU yields scale factor 0.
func scalingScenarios(t *pricing.Table, totalUSD float64, baseUsers int, currency string) map[string]float64 {
	out := make(map[string]float64)
	for _, target := range scalingTargets {
		var factor float64
		if baseUsers > 0 {
			factor = float64(target.users) / float64(baseUsers)
		}
		scaledUSD := totalUSD * math.Pow(factor, scalingExponent)
		out[target.label] = t.Convert(scaledUSD, currency)
	}
	return out
}
