// Package estimate - CDN costs
package estimate

import (
	"fmt"

	"archcost/core/pricing"
	"archcost/core/types"
)

// cdnCost prices the CDN block. The video streaming multiplier is applied
// after the edge function addition; reordering changes the total.
func cdnCost(t *pricing.Table, cfg types.CDNConfig, reqs map[string]string) float64 {
	if !cfg.Enabled {
		return 0.0
	}

	cost := cfg.DataTransferGB * t.Price("cdn", cfg.Provider+"_gb")
	reqs["CDN Transfer"] = fmt.Sprintf("%g GB/mo via %s", cfg.DataTransferGB, titleCase(cfg.Provider))

	if cfg.EdgeFunctions {
		// Rough conversion of transfer volume to edge invocations
		edgeRequests := cfg.DataTransferGB * 100 / 1024
		cost += edgeRequests / 1e6 * t.Price("cdn", cfg.Provider+"_edge_function_1m")
		reqs["Edge Functions"] = "Enabled"
	}

	if cfg.VideoStreaming {
		cost *= t.Price("cdn", "video_streaming_multiplier")
		reqs["Video Streaming"] = "Optimized"
	}

	return cost
}
