// Package estimate - Security costs
package estimate

import (
	"fmt"
	"strings"

	"archcost/core/pricing"
	"archcost/core/types"
)

// complianceStandards is the recognized set; anything else is ignored
var complianceStandards = map[string]bool{
	"soc2":     true,
	"iso27001": true,
	"hipaa":    true,
	"pci_dss":  true,
}

// securityCost prices the security block
func securityCost(t *pricing.Table, cfg types.SecurityConfig, traffic types.TrafficInput, reqs map[string]string) float64 {
	var cost float64

	if cfg.WAFEnabled {
		// 10 managed rules plus per-request inspection
		rulesCost := 10 * t.Price("security", "waf_rule")
		monthlyRequests := traffic.DailyActiveUsers * traffic.APIRequestsPerUser * 30
		requestsCost := float64(monthlyRequests) / 1e6 * t.Price("security", "waf_request_1m")
		cost += rulesCost + requestsCost
		reqs["WAF"] = "Enabled (10 rules)"
	}

	if cfg.VPNEnabled {
		cost += t.Price("security", "vpn_connection")
		reqs["VPN"] = "Site-to-Site connection"
	}

	if cfg.DDoSProtection {
		cost += t.Price("security", "shield_advanced")
		reqs["DDoS"] = "AWS Shield Advanced"
	}

	if cfg.SSLCertificates > 0 {
		// ACM certificates are free
		reqs["SSL"] = fmt.Sprintf("%d certificates (ACM)", cfg.SSLCertificates)
	}

	if cfg.SecretsManager {
		// Assume a fleet of 20 secrets
		cost += 20 * t.Price("security", "secrets_manager_secret")
		reqs["Secrets"] = "20 secrets managed"
	}

	// Compliance audit costs, amortized monthly
	for _, standard := range cfg.Compliance {
		lower := strings.ToLower(standard)
		if complianceStandards[lower] {
			cost += t.Price("security", lower+"_monthly")
			reqs["Compliance"] = fmt.Sprintf("%s audit", strings.ToUpper(standard))
		}
	}

	return cost
}
