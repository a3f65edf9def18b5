// Package estimate - Database add-on costs
package estimate

import (
	"fmt"
	"strings"

	"archcost/core/pricing"
	"archcost/core/types"
)

// databaseCost layers the configured database add-ons onto the architecture
// base cost and returns the replacement database cost. Order matters and is
// load-bearing: replicas are added before the Multi-AZ doubling, backups and
// cache after it.
func databaseCost(t *pricing.Table, traffic types.TrafficInput, cfg types.DatabaseConfig, baseCost float64, reqs map[string]string) float64 {
	cost := baseCost

	if cfg.ReadReplicas > 0 {
		cost += float64(cfg.ReadReplicas) * t.Price("database", "read_replica")
		reqs["Read Replicas"] = fmt.Sprintf("%dx replicas", cfg.ReadReplicas)
	}

	// Multi-AZ doubles the running database cost for redundancy
	if cfg.MultiAZ {
		cost *= 2.0
		reqs["Multi-AZ"] = "Enabled for HA"
	}

	if cfg.BackupEnabled {
		// Backups sized at ~20% of total data
		backupGB := float64(traffic.DailyActiveUsers) * traffic.StoragePerUserMB / 1024 * 0.2
		cost += backupGB * t.Price("database", "backup_gb")
		reqs["Backups"] = fmt.Sprintf("%.1f GB retained", backupGB)
	}

	if cfg.CacheType != "" && cfg.CacheSizeGB > 0 {
		var cacheCost float64
		switch {
		case cfg.CacheSizeGB <= 1:
			cacheCost = t.Price("cache", cfg.CacheType+"_t4g_micro")
		case cfg.CacheSizeGB <= 3:
			cacheCost = t.Price("cache", cfg.CacheType+"_t4g_small")
		default:
			cacheCost = t.Price("cache", cfg.CacheType+"_t4g_medium")
		}
		cost += cacheCost
		reqs["Cache"] = fmt.Sprintf("%s (%gGB)", titleCase(cfg.CacheType), cfg.CacheSizeGB)
	}

	return cost
}

// titleCase capitalizes the first letter ("redis" -> "Redis")
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
