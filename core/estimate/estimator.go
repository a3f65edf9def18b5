// Package estimate implements the cost estimation pipeline: a deterministic,
// side-effect-free function from (architecture, traffic, currency) to a full
// cost breakdown. It reads only from an immutable pricing.Table, so any
// number of estimations may run concurrently against the same snapshot.
//
// All intermediate arithmetic is in USD; currency conversion is applied once
// at the end, identically to every component and to the precomputed total.
package estimate

import (
	"fmt"
	"math"
	"strings"

	"archcost/core/pricing"
	"archcost/core/types"
)

// Estimate produces a full estimation result. Input is assumed to be
// validated upstream; missing price table entries degrade to zero cost.
func Estimate(t *pricing.Table, arch types.Architecture, traffic types.TrafficInput, currency string) *types.EstimationResult {
	cur := strings.ToUpper(strings.TrimSpace(currency))
	if cur == "" {
		cur = "USD"
	}

	reqs := make(map[string]string)

	// Step 1: architecture-derived compute/database baseline
	base := sizeArchitecture(t, arch, traffic, reqs)
	computeUSD := base.computeCost

	// Step 2: storage, common to all architectures
	storageGB := math.Max(0, float64(traffic.DailyActiveUsers)*traffic.StoragePerUserMB/1024)
	storageUSD := storageGB * t.Price("storage", "s3_gb")
	reqs["Storage"] = fmt.Sprintf("%.2f GB S3", storageGB)

	// Step 3: flat load balancer, independent of scale
	networkingUSD := t.Price("networking", "load_balancer")

	// Step 4: feature blocks. Database add-ons replace the baseline cost;
	// the other blocks are their own categories.
	databaseUSD := databaseCost(t, traffic, traffic.Database, base.databaseCost, reqs)
	cdnUSD := cdnCost(t, traffic.CDN, reqs)
	messagingUSD := messagingCost(t, traffic.Messaging, reqs)
	securityUSD := securityCost(t, traffic.Security, traffic, reqs)
	monitoringUSD := monitoringCost(t, traffic.Monitoring, base.instances, traffic, reqs)
	cicdUSD := cicdCost(t, traffic.CICD, reqs)

	// Step 5: totals in USD; multi-region is priced against everything else
	baseTotalUSD := computeUSD + databaseUSD + storageUSD + networkingUSD +
		cdnUSD + messagingUSD + securityUSD + monitoringUSD + cicdUSD
	multiRegionUSD := multiRegionCost(t, traffic.MultiRegion, baseTotalUSD, reqs)
	totalUSD := baseTotalUSD + multiRegionUSD

	// Step 6: convert every component and the precomputed total
	monthly := types.CostComponent{
		Compute:     t.Convert(computeUSD, cur),
		Database:    t.Convert(databaseUSD, cur),
		Storage:     t.Convert(storageUSD, cur),
		Networking:  t.Convert(networkingUSD, cur),
		CDN:         t.Convert(cdnUSD, cur),
		Messaging:   t.Convert(messagingUSD, cur),
		Security:    t.Convert(securityUSD, cur),
		Monitoring:  t.Convert(monitoringUSD, cur),
		CICD:        t.Convert(cicdUSD, cur),
		MultiRegion: t.Convert(multiRegionUSD, cur),
		Total:       t.Convert(totalUSD, cur),
	}
	yearly := monthly.Total * 12

	return &types.EstimationResult{
		Architecture:               arch,
		TrafficInput:               traffic,
		Currency:                   cur,
		MonthlyCost:                monthly,
		YearlyCost:                 yearly,
		ThreeYearProjection:        threeYearProjection(yearly, traffic.GrowthRateYoY),
		InfrastructureRequirements: reqs,
		MultiCloudCosts:            multiCloudCosts(t, totalUSD, cur),
		ScalingScenarios:           scalingScenarios(t, totalUSD, traffic.DailyActiveUsers, cur),
		OptimizationSuggestions:    suggestions(t, arch, computeUSD, storageUSD, cur),
		BusinessMetrics:            businessMetrics(t, traffic, monthly.Total, cur),
	}
}
