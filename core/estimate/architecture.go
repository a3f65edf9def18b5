// Package estimate - Architecture base sizing.
// Each architecture sizes its own compute and database baseline; the result
// feeds the add-on calculators and the instance-equivalent count feeds
// monitoring.
package estimate

import (
	"fmt"

	"archcost/core/pricing"
	"archcost/core/types"
)

// rpsPerInstance is the assumed capacity of one monolith instance
const rpsPerInstance = 40.0

// baseSizing is the architecture-derived compute/database baseline
type baseSizing struct {
	computeCost  float64
	databaseCost float64

	// instances is the instance-equivalent count used by monitoring.
	// For serverless it is millions of monthly invocations.
	instances int
}

// sizeArchitecture computes the baseline costs for the selected architecture
// and records the sizing requirement strings.
func sizeArchitecture(t *pricing.Table, arch types.Architecture, traffic types.TrafficInput, reqs map[string]string) baseSizing {
	switch arch {
	case types.ArchMonolith:
		dailyRequests := traffic.DailyActiveUsers * traffic.APIRequestsPerUser
		peakRPS := float64(dailyRequests) / 86400.0 * traffic.PeakTrafficMultiplier

		instances := max(1, int(peakRPS/rpsPerInstance)+1)
		computeCost := float64(instances) * t.Price("compute", "t3.medium")
		reqs["Compute"] = fmt.Sprintf("%dx t3.medium EC2 (Peak RPS: %.1f)", instances, peakRPS)

		databaseCost := t.Price("database", "rds_db.t3.medium")
		reqs["Database"] = "1x db.t3.medium RDS"

		return baseSizing{computeCost: computeCost, databaseCost: databaseCost, instances: instances}

	case types.ArchMicroservices:
		const services = 5
		perService := max(1, traffic.DailyActiveUsers/50000)
		instances := services * perService

		computeCost := float64(instances) * t.Price("compute", "t3.micro")
		reqs["Compute"] = fmt.Sprintf("%dx t3.micro (across %d services)", instances, services)

		databaseCost := t.Price("database", "rds_db.t3.medium") + t.Price("database", "dynamodb_unit")*10
		reqs["Database"] = "RDS + DynamoDB"

		return baseSizing{computeCost: computeCost, databaseCost: databaseCost, instances: instances}

	case types.ArchServerless:
		requestsPerMonth := traffic.DailyActiveUsers * traffic.APIRequestsPerUser * 30
		computeCost := float64(requestsPerMonth) / 1e6 * t.Price("compute", "lambda_1m_requests")
		reqs["Compute"] = grouped.Sprintf("%d Lambda Invocations/mo", requestsPerMonth)

		databaseCost := t.Price("database", "dynamodb_unit") * 20
		reqs["Database"] = "DynamoDB On-Demand"

		// Instance equivalents for monitoring: millions of invocations
		return baseSizing{
			computeCost:  computeCost,
			databaseCost: databaseCost,
			instances:    max(1, requestsPerMonth/1000000),
		}

	default: // hybrid or unrecognized
		instances := max(1, traffic.DailyActiveUsers/20000)
		computeCost := float64(instances) * t.Price("compute", "t3.medium")
		reqs["Compute"] = fmt.Sprintf("%dx t3.medium (Hybrid)", instances)

		databaseCost := t.Price("database", "rds_db.t3.medium")
		return baseSizing{computeCost: computeCost, databaseCost: databaseCost, instances: instances}
	}
}
