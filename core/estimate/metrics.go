// Package estimate - Business metrics
package estimate

import (
	"fmt"

	"archcost/core/pricing"
	"archcost/core/types"
)

// runwayCapMonths is where runway reporting switches to the sentinel string
const runwayCapMonths = 240.0

// businessMetrics derives cost-per-user, runway and revenue ratios from the
// converted monthly total. Funding and revenue inputs are denominated in USD
// and converted once here. Every ratio guards its denominator.
func businessMetrics(t *pricing.Table, traffic types.TrafficInput, monthlyTotal float64, currency string) map[string]string {
	metrics := make(map[string]string)

	if traffic.DailyActiveUsers > 0 {
		costPerUser := monthlyTotal / float64(traffic.DailyActiveUsers)
		metrics["Infrastructure Cost per User"] = fmt.Sprintf("%s%.4f/mo", t.Symbol(currency), costPerUser)
	}

	if traffic.FundingAvailable > 0 && monthlyTotal > 0 {
		funding := t.Convert(traffic.FundingAvailable, currency)
		runwayMonths := funding / monthlyTotal
		if runwayMonths > runwayCapMonths {
			metrics["Runway"] = "Indefinite (>20 years)"
		} else {
			metrics["Runway"] = fmt.Sprintf("%.1f months", runwayMonths)
		}
	}

	if traffic.RevenuePerUserMonthly > 0 && traffic.DailyActiveUsers > 0 {
		revenuePerUser := t.Convert(traffic.RevenuePerUserMonthly, currency)
		totalRevenue := revenuePerUser * float64(traffic.DailyActiveUsers)

		var costPercent float64
		if totalRevenue > 0 {
			costPercent = monthlyTotal / totalRevenue * 100
		}
		metrics["Infra Cost as % of Revenue"] = fmt.Sprintf("%.1f%%", costPercent)

		if costPercent > 100 {
			metrics["Profitability"] = "Unprofitable (Infra costs exceed revenue)"
		} else {
			metrics["Profitability"] = "Profitable (Infra-wise)"
		}
	}

	return metrics
}
