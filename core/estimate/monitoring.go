// Package estimate - Monitoring and observability costs
package estimate

import (
	"fmt"

	"archcost/core/pricing"
	"archcost/core/types"
)

// datadogAPMPerHost is Datadog's flat APM surcharge per host
const datadogAPMPerHost = 50.0

// monitoringCost prices the monitoring block, scaled by the architecture's
// instance-equivalent count.
func monitoringCost(t *pricing.Table, cfg types.MonitoringConfig, instances int, traffic types.TrafficInput, reqs map[string]string) float64 {
	var cost float64
	hosts := float64(instances)

	switch cfg.Provider {
	case "cloudwatch":
		// 10 custom metrics per instance plus ~1GB logs per instance
		metricCost := hosts * 10 * t.Price("monitoring", "cloudwatch_metric")
		logCost := hosts * t.Price("monitoring", "cloudwatch_log_gb")
		cost = metricCost + logCost
		reqs["Monitoring"] = fmt.Sprintf("CloudWatch (%d hosts)", instances)

	case "datadog":
		cost = hosts * t.Price("monitoring", "datadog_host")
		if cfg.APMEnabled {
			cost += hosts * datadogAPMPerHost
		}
		reqs["Monitoring"] = fmt.Sprintf("Datadog (%d hosts)", instances)

	case "newrelic":
		cost = hosts * t.Price("monitoring", "newrelic_host")
		if cfg.APMEnabled {
			cost += hosts * t.Price("monitoring", "newrelic_apm_host")
		}
		reqs["Monitoring"] = fmt.Sprintf("New Relic (%d hosts)", instances)
	}

	if cfg.DistributedTracing {
		monthlyRequests := traffic.DailyActiveUsers * traffic.APIRequestsPerUser * 30
		cost += float64(monthlyRequests) / 1e6 * t.Price("monitoring", "xray_trace_1m")
		reqs["Tracing"] = "X-Ray/distributed"
	}

	return cost
}
